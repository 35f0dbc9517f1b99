package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation vérifie si une erreur est une violation de contrainte unique (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation vérifie si une erreur est une violation de clé étrangère (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// nullable convertit "" en NULL pour les colonnes de référence optionnelles.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// deref retourne "" pour un *string NULL.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
