package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrForbidden - у вызывающего нет нужной роли в группе
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "caller is not allowed to perform this action",
	}

	// ErrUnauthorized - запрос без валидного токена или неверные учетные данные
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "invalid credentials",
	}

	// ErrEmailExists - email уже зарегистрирован
	ErrEmailExists = &DomainError{
		Code:    "EMAIL_EXISTS",
		Message: "email already registered",
	}

	// ErrInviteExpired - срок приглашения истёк
	ErrInviteExpired = &DomainError{
		Code:    "INVITE_EXPIRED",
		Message: "invite has expired",
	}

	// ErrSelfBlock - админ пытается заблокировать сам себя
	ErrSelfBlock = &DomainError{
		Code:    "SELF_BLOCK_FORBIDDEN",
		Message: "admin cannot block themselves",
	}

	// ErrNotAMember - целевой пользователь не состоит в группе
	ErrNotAMember = &DomainError{
		Code:    "NOT_A_MEMBER",
		Message: "user is not a member of this group",
	}

	// ErrCannotBlockAdmin - нельзя заблокировать другого админа
	ErrCannotBlockAdmin = &DomainError{
		Code:    "CANNOT_BLOCK_ADMIN",
		Message: "cannot block another admin",
	}

	// ErrNotBlocked - пользователь не заблокирован в группе
	ErrNotBlocked = &DomainError{
		Code:    "NOT_BLOCKED",
		Message: "user is not blocked in this group",
	}

	// ErrInvalidOTP - код восстановления неверен или просрочен
	ErrInvalidOTP = &DomainError{
		Code:    "INVALID_OTP",
		Message: "invalid or expired reset code",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку BAD_REQUEST для некорректного запроса
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}
