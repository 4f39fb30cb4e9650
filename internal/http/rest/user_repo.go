package rest

import (
	"context"

	"github.com/pooller/pooller-api/internal/model"
)

func (api *API) UpdateUserRepo(ctx context.Context, user model.User) error {
	stmt := `
        UPDATE users
        SET firstname = $2, lastname = $3, updated_at = NOW()
        WHERE id = $1
    `
	_, err := api.Deps.DB.Pool().Exec(ctx, stmt, user.ID, user.FirstName, user.LastName)
	if err != nil {
		return err
	}
	return nil
}

func (api *API) DeleteUserRepo(ctx context.Context, userID string) error {
	stmt := `DELETE FROM users WHERE id = $1`

	_, err := api.Deps.DB.Pool().Exec(ctx, stmt, userID)
	if err != nil {
		return err
	}
	return nil
}
