package logging

import "github.com/sirupsen/logrus"

// BaseFields builds the action + config-path fields shared by CLI entry
// points.
func BaseFields(action, configPath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"configPath": configPath,
	}
}

// RelayFields carries the per-request fields every relay log line shares.
func RelayFields(target string, status int, rewritten bool) logrus.Fields {
	return logrus.Fields{
		"action":          "relay",
		"target":          target,
		"upstream_status": status,
		"rewritten":       rewritten,
	}
}
