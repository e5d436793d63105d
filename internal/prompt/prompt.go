// Package prompt builds the instruction sent to the inference backend.
package prompt

import "fmt"

// Build returns the commenting prompt for code written in language.
// The code is embedded verbatim.
func Build(code, language string) string {
	return fmt.Sprintf(`Add comments to the following %s code:
Write a block comment above the [class/function/module] that briefly explains what it does, its purpose, and its key inputs/outputs or features. Use the standard comment style for the given programming language.
For each logical block or section, add a brief block comment above it that gives an overview of what the block does.
For individual lines or statements, add short single-line comments that are direct and easy to scan.
Return only one code block with both comment styles integrated. Do not separate or label them.

Code:
%s`, language, code)
}
