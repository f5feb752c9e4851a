package dotenv

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из .env (или переданных файлов), если они есть.
// Уже выставленные переменные окружения не перезаписываются.
// Возвращает false, если ни одного файла не нашлось.
func Load(filenames ...string) (bool, error) {
	err := godotenv.Load(filenames...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load env file: %w", err)
	}
	return true, nil
}
