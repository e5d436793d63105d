/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/codecomment/internal/config"
	"github.com/valpere/codecomment/internal/generator"
	"github.com/valpere/codecomment/internal/logging"
)

// setup decodes the merged configuration and builds the logger and the
// backend client shared by the subcommands.
func setup() (config.Config, *zap.Logger, *generator.OllamaGenerator, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	gen := generator.NewOllamaGenerator(cfg.Ollama.URL, cfg.Ollama.Model, cfg.Ollama.Timeout)
	return cfg, logger, gen, nil
}
