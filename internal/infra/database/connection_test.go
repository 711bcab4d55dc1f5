package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	pg := &Conn{Dialect: Postgres}
	lite := &Conn{Dialect: SQLite}

	q := `UPDATE leads SET status = ? WHERE id = ? AND supplier_id = ?`

	assert.Equal(t, `UPDATE leads SET status = $1 WHERE id = $2 AND supplier_id = $3`, pg.Rebind(q))
	assert.Equal(t, q, lite.Rebind(q))
}

func TestNewDBConnectionRejectsUnknownDriver(t *testing.T) {
	_, err := NewDBConnection("mysql", "root@/db", PoolConfig{})
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = NewDBConnection("sqlite", "", PoolConfig{})
	assert.ErrorContains(t, err, "database url is empty")
}
