package repositories_gorm

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gitlab.com/nunet/gputemp/db/repositories"
)

// handleDBError is a utility function that translates GORM database errors into custom repository errors.
// The original error text is kept in the message.
func handleDBError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.NotFoundError
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidField), errors.Is(err, gorm.ErrInvalidValue):
		return fmt.Errorf("%w: %v", repositories.InvalidDataError, err)
	default:
		return fmt.Errorf("%w: %v", repositories.DatabaseError, err)
	}
}

// applyConditions applies conditions, sorting, limiting, and offsetting to a GORM database query.
// Field names in conditions, in the query instance and in SortBy are struct field names and are
// translated to column names through the GORM naming strategy.
func applyConditions[T any](db *gorm.DB, query repositories.Query[T]) *gorm.DB {
	// Retrieve the table name using the GORM naming strategy.
	tableName := db.NamingStrategy.TableName(reflect.TypeOf(*new(T)).Name())

	for _, condition := range query.Conditions {
		columnName := db.NamingStrategy.ColumnName(tableName, condition.Field)
		db = db.Where(
			fmt.Sprintf("%s %s ?", columnName, condition.Operator),
			condition.Value,
		)
	}

	// Apply conditions based on non-zero values in the query instance.
	if !repositories.IsEmptyValue(query.Instance) {
		exampleType := reflect.TypeOf(query.Instance)
		exampleValue := reflect.ValueOf(query.Instance)
		for i := 0; i < exampleType.NumField(); i++ {
			fieldName := exampleType.Field(i).Name
			fieldValue := exampleValue.Field(i).Interface()
			if !repositories.IsEmptyValue(fieldValue) {
				columnName := db.NamingStrategy.ColumnName(tableName, fieldName)
				db = db.Where(fmt.Sprintf("%s = ?", columnName), fieldValue)
			}
		}
	}

	for _, sortBy := range query.SortBy {
		desc := strings.HasPrefix(sortBy, "-")
		field := strings.TrimPrefix(sortBy, "-")
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: db.NamingStrategy.ColumnName(tableName, field)},
			Desc:   desc,
		})
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	return db
}
