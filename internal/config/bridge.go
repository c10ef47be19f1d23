package config

import "github.com/sirupsen/logrus"

// Bridge adapts a Store for the interactive session. Failures are logged as
// warnings and never surface to the caller.
type Bridge struct {
	store  *Store
	logger *logrus.Entry
}

// NewBridge wraps store, logging through logger.
func NewBridge(store *Store, logger *logrus.Entry) *Bridge {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Bridge{store: store, logger: logger}
}

// DefaultDirectory returns the persisted default root, if any. When the
// TOML file has none, a legacy properties value is returned and migrated.
func (b *Bridge) DefaultDirectory() (string, bool) {
	dir, ok, err := b.store.Load()
	if err != nil {
		b.logger.WithError(err).Warn("could not load config, continuing without a default directory")
		return "", false
	}
	if ok {
		return dir, true
	}

	dir, ok, err = b.store.LoadLegacy()
	if err != nil {
		b.logger.WithError(err).Warn("could not read legacy config")
		return "", false
	}
	if !ok {
		return "", false
	}

	b.logger.WithField("directory", dir).Info("migrating default directory from legacy config")
	if err := b.store.Save(dir); err != nil {
		b.logger.WithError(err).Warn("could not migrate legacy config")
	}
	return dir, true
}

// SetDefaultDirectory persists dir. The in-memory root changes regardless.
func (b *Bridge) SetDefaultDirectory(dir string) {
	if err := b.store.Save(dir); err != nil {
		b.logger.WithError(err).WithField("directory", dir).Warn("could not save config")
		return
	}
	b.logger.WithField("directory", dir).Debug("saved default directory")
}
