package handlers

import (
	"go.uber.org/zap"

	"github.com/habitflow/HabitFlowBackend/services"
)

var (
	engines *services.EngineManager
	logger  *zap.Logger
)

// Init wires the shared services into the handler package.
func Init(manager *services.EngineManager, l *zap.Logger) {
	engines = manager
	logger = l
}
