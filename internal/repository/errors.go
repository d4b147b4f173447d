package repository

import "errors"

// ErrNotFound возвращается репозиториями, когда запрошенной строки нет.
// Сервисный слой переводит её в доменную ошибку с контекстом.
var ErrNotFound = errors.New("not found")
