package postgres

import "database/sql"

// Queryer é a superfície mínima de consulta que os repositórios dependem.
// *Connection a satisfaz através do *sql.DB embutido.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
