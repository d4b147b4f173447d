package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

// memberGuard - проверка авторизации на маршрутах, привязанных к группе.
// Для required=member достаточно любой строки членства, для required=admin -
// только строки с ролью admin. Отсутствие строки - отказ.
type memberGuard struct {
	members repository.MemberRepository
}

func (g memberGuard) require(ctx context.Context, groupID, callerID int, required domain.Role) error {
	m, err := g.members.Get(ctx, groupID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}

	if !m.Role.Satisfies(required) {
		return domain.ErrForbidden
	}

	return nil
}
