package xpgx

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sb() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func TestGetx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	pool := NewPool(mock)

	mock.ExpectQuery(`SELECT name FROM doctors WHERE name = \$1`).
		WithArgs("Dr. Emily Davis").
		WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("Dr. Emily Davis"))

	var got struct {
		Name string `db:"name"`
	}
	query := sb().Select("name").From("doctors").Where(squirrel.Eq{"name": "Dr. Emily Davis"})

	require.NoError(t, pool.Getx(context.Background(), &got, query))
	assert.Equal(t, "Dr. Emily Davis", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetx_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	pool := NewPool(mock)

	mock.ExpectQuery(`SELECT name FROM doctors`).
		WillReturnRows(pgxmock.NewRows([]string{"name"}))

	var got struct {
		Name string `db:"name"`
	}
	query := sb().Select("name").From("doctors")

	assert.Error(t, pool.Getx(context.Background(), &got, query))
}

func TestExecx_BadQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	pool := NewPool(mock)

	// No columns makes the builder fail before anything hits the pool.
	_, err = pool.Execx(context.Background(), sb().Select().From("doctors"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build query")
}
