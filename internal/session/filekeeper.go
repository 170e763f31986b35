package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FileKeeper хранит идентичность в JSON-файле. Аналог localStorage браузера
// для Go-клиентов сервиса.
type FileKeeper struct {
	path string
}

// NewFileKeeper создаёт FileKeeper с заданным путём к файлу.
func NewFileKeeper(path string) *FileKeeper {
	return &FileKeeper{path: path}
}

// Load читает сохранённую идентичность. Отсутствие файла — не ошибка.
func (k *FileKeeper) Load() (*Identity, error) {
	const op = "session.FileKeeper.Load"
	data, err := os.ReadFile(k.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if identity.Token == "" {
		return nil, fmt.Errorf("%s: empty token", op)
	}
	return &identity, nil
}

// Save записывает идентичность с правами только для владельца.
func (k *FileKeeper) Save(identity Identity) error {
	const op = "session.FileKeeper.Save"
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(k.path, data, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear удаляет сохранённую идентичность. Отсутствие файла — не ошибка.
func (k *FileKeeper) Clear() error {
	const op = "session.FileKeeper.Clear"
	if err := os.Remove(k.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
