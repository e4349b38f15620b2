package validation

import (
	"fmt"
	"regexp"
)

// TableNamePattern определяет допустимый формат имени таблицы
// Только строчные латинские буквы, цифры и нижнее подчеркивание,
// первый символ - буква. Длина: 1-64 символа
var TableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// MaxTableNameLen максимальная длина имени таблицы
const MaxTableNameLen = 64

// ValidateTableName проверяет, что имя таблицы соответствует требованиям.
// Имена таблиц попадают в пути API и в ключи хранилища, поэтому формат
// ограничен заранее
func ValidateTableName(table string) error {
	if table == "" {
		return fmt.Errorf("table name cannot be empty")
	}

	if len(table) > MaxTableNameLen {
		return fmt.Errorf("table name must not exceed %d characters", MaxTableNameLen)
	}

	if !TableNamePattern.MatchString(table) {
		return fmt.Errorf("table name can only contain lowercase letters (a-z), numbers (0-9), and underscores (_), starting with a letter")
	}

	return nil
}
