// Package readstore implements the read side against Postgres directly.
// Queries join and project freely; nothing here goes through domain entities.
package readstore

import (
	"errors"

	"playpark/internal/infra"

	"github.com/jackc/pgx/v5"
)

func wrapQueryErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
