package logger

import (
	"log"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarning
	levelError
)

var currentLevel = levelInfo

func setLevel(name string) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		currentLevel = levelDebug
	case "INFO":
		currentLevel = levelInfo
	case "WARNING", "WARN":
		currentLevel = levelWarning
	case "ERROR":
		currentLevel = levelError
	default:
		currentLevel = levelInfo
	}
}

// Debugf logs a message at DEBUG level
func Debugf(format string, args ...interface{}) {
	if currentLevel <= levelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs a message at INFO level
func Infof(format string, args ...interface{}) {
	if currentLevel <= levelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Warningf logs a message at WARNING level
func Warningf(format string, args ...interface{}) {
	if currentLevel <= levelWarning {
		log.Printf("[WARNING] "+format, args...)
	}
}

// Errorf logs a message at ERROR level
func Errorf(format string, args ...interface{}) {
	if currentLevel <= levelError {
		log.Printf("[ERROR] "+format, args...)
	}
}
