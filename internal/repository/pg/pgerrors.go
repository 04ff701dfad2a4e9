package pg

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	Unclassified ErrorClassification = iota
	Unavailable
	UniqueViolation

	ErrIsExistCode = "23505"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyCode(string(pqErr.Code))
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unavailable
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return Unavailable
	}

	return Unclassified
}

func classifyCode(code string) ErrorClassification {
	// Коды ошибок PostgreSQL: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch code {
	// Класс 08 - Ошибки соединения
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Unavailable

	// Класс 53 и 57 - нехватка ресурсов, сервер недоступен
	case "53300", "57P01", "57P03":
		return Unavailable

	case ErrIsExistCode:
		return UniqueViolation
	}

	return Unclassified
}

// wrap - оборачивает ошибку драйвера доменной ошибкой, если она классифицирована
func (r *Repository) wrap(op string, err error) error {
	switch r.classifier.Classify(err) {
	case Unavailable:
		return fmt.Errorf("%s: %w: %w", op, model.ErrStoreUnavailable, err)
	case UniqueViolation:
		return fmt.Errorf("%s: %w", op, model.ErrDuplicateFolio)
	}

	return fmt.Errorf("%s: %w", op, err)
}
