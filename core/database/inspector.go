package database

import (
	"fmt"
	"strings"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// SchemaIssue describes a table that does not match its model.
type SchemaIssue struct {
	Table          string   `json:"table"`
	MissingTable   bool     `json:"missing_table"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	}

	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// VerifySchema compares every model against the live tables and reports tables
// or columns that are missing. An empty result means the schema is usable.
func VerifySchema(db *gorm.DB) ([]SchemaIssue, error) {
	var issues []SchemaIssue

	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		columns, err := GetTableColumns(db, table)
		if err != nil {
			return nil, err
		}
		if len(columns) == 0 {
			issues = append(issues, SchemaIssue{Table: table, MissingTable: true})
			continue
		}

		present := make(map[string]struct{}, len(columns))
		for _, col := range columns {
			present[col.Field] = struct{}{}
		}

		var missing []string
		for _, name := range stmt.Schema.DBNames {
			if _, ok := present[strings.ToLower(name)]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			issues = append(issues, SchemaIssue{Table: table, MissingColumns: missing})
		}
	}

	return issues, nil
}
