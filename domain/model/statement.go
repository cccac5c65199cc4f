package model

import (
	"fmt"
	"strings"
)

const surrogateKeyName = "id"

// CreateTableStatement renders the CREATE TABLE statement for the schema.
func (s *RecordSchema) CreateTableStatement() string {
	cols := make([]string, 0, len(s.Columns)+len(s.DateFields)+1)
	for i, c := range s.Columns {
		if i == 0 {
			if s.HasPrimaryColumn {
				cols = append(cols, c.Name()+" "+c.SQLType().String()+" PRIMARY KEY")
				continue
			}
			cols = append(cols, surrogateKeyName+" "+SQLTypeInteger.String()+" PRIMARY KEY")
		}
		cols = append(cols, c.Name()+" "+c.SQLType().String())
	}
	for _, d := range s.DateFields {
		cols = append(cols, d.Name()+" "+SQLTypeText.String())
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.TableName, strings.Join(cols, ", "))
}

// InsertStatement renders a parameterized INSERT with one placeholder per
// column of ColumnNames, the shape of every row ParseRow returns.
func (s *RecordSchema) InsertStatement() string {
	return insertStatement(s.TableName, len(s.ColumnNames()))
}

func insertStatement(table string, n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, strings.Join(placeholders, ", "))
}
