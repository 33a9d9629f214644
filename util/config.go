/*
 * Copyright 2024 The module-resolver Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package util

import (
	srv_base "github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
)

type LoggerConfig struct {
	Level        level.Level `json:"level" env_var:"LOGGER_LEVEL"`
	Utc          bool        `json:"utc" env_var:"LOGGER_UTC"`
	Path         string      `json:"path" env_var:"LOGGER_PATH"`
	FileName     string      `json:"file_name" env_var:"LOGGER_FILE_NAME"`
	Prefix       string      `json:"prefix" env_var:"LOGGER_PREFIX"`
	Terminal     bool        `json:"terminal" env_var:"LOGGER_TERMINAL"`
	Microseconds bool        `json:"microseconds" env_var:"LOGGER_MICROSECONDS"`
}

type CatalogConfig struct {
	MetadataPath string `json:"metadata_path" env_var:"CATALOG_METADATA_PATH"`
}

type ModConfStorageConfig struct {
	ModulesDirPath string `json:"modules_dir_path" env_var:"MCS_MODULES_DIR_PATH"`
}

type SolverConfig struct {
	BaseUrl string `json:"base_url" env_var:"SOLVER_BASE_URL"`
	Timeout int64  `json:"timeout" env_var:"SOLVER_TIMEOUT"`
}

type JobsConfig struct {
	BufferSize  int   `json:"buffer_size" env_var:"JOBS_BUFFER_SIZE"`
	MaxNumber   int   `json:"max_number" env_var:"JOBS_MAX_NUMBER"`
	CCHInterval int   `json:"cch_interval" env_var:"JOBS_CCH_INTERVAL"`
	PJHInterval int   `json:"pjh_interval" env_var:"JOBS_PJH_INTERVAL"`
	MaxAge      int64 `json:"max_age" env_var:"JOBS_MAX_AGE"`
}

type Config struct {
	ServerPort     uint                 `json:"server_port" env_var:"SERVER_PORT"`
	Logger         LoggerConfig         `json:"logger" env_var:"LOGGER_CONFIG"`
	Catalog        CatalogConfig        `json:"catalog" env_var:"CATALOG_CONFIG"`
	ModConfStorage ModConfStorageConfig `json:"module_conf_storage" env_var:"MCS_CONFIG"`
	Solver         SolverConfig         `json:"solver" env_var:"SOLVER_CONFIG"`
	Jobs           JobsConfig           `json:"jobs" env_var:"JOBS_CONFIG"`
}

func NewConfig(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 80,
		Logger: LoggerConfig{
			Level:        level.Warning,
			Utc:          true,
			Microseconds: true,
			Terminal:     true,
		},
		Catalog: CatalogConfig{
			MetadataPath: "/opt/module-resolver/catalog",
		},
		ModConfStorage: ModConfStorageConfig{
			ModulesDirPath: "/opt/module-resolver/modules.d",
		},
		Solver: SolverConfig{
			BaseUrl: "http://depsolver",
			Timeout: 30000000000,
		},
		Jobs: JobsConfig{
			BufferSize:  50,
			MaxNumber:   10,
			CCHInterval: 500000,
			PJHInterval: 500000,
			MaxAge:      3600000000,
		},
	}
	err := srv_base.LoadConfig(&path, &cfg, nil, nil, nil)
	return &cfg, err
}
