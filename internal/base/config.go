package base

import (
	"encoding/json"
	"errors"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/config"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/global"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/utils"
	"github.com/joho/godotenv"
	"os"
)

func readConfig(logger log.LoggerInterface, path string) (*config.Config, *config.ValidResult) {
	cfg := config.DefaultConfig()

	if bytes, err := os.ReadFile(path); err != nil {
		if err := saveConfig(path, cfg); err != nil {
			return nil, config.ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, config.ValidFail(errors.New("the configuration file does not exist and has been created. Please try again after editing the configuration file"))
	} else if err := json.Unmarshal(bytes, cfg); err != nil {
		return nil, config.ValidFailWith(errors.New("the configuration file does not contain valid JSON"), err)
	}

	loadEnvFile(logger, *global.EnvFilePath)
	cfg.ApplyEnv(global.EnvPrefix, os.LookupEnv)

	if result := cfg.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return cfg, config.ValidPass()
}

// loadEnvFile never overrides variables already present in the process environment.
func loadEnvFile(logger log.LoggerInterface, path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.WarnF("Fail to load env file %s: %v", path, err)
		}
		return
	}
	logger.DebugF("Loaded environment from %s", path)
}

func saveConfig(path string, cfg *config.Config) error {
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, global.DefaultFilePermissions)
}

type Manager struct {
	config *utils.CachedValue[config.Config]
	logger log.LoggerInterface
	path   string
}

func NewManager(logger log.LoggerInterface) *Manager {
	manager := &Manager{
		logger: logger,
		path:   *global.ConfigFilePath,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

func (manager *Manager) getConfig() *config.Config {
	if cfg, result := readConfig(manager.logger, manager.path); result.IsFail() {
		manager.logger.FatalF("Config check failed: %v", result.Err())
		panic(result.Error())
	} else {
		return cfg
	}
}

func (manager *Manager) Config() *config.Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.path, manager.Config())
}
