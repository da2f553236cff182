package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Store is the persistence surface the repositories build on. PostgresDB
// implements it; Transaction hands callers a Store scoped to one database
// transaction.
type Store interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	Save(ctx context.Context, record any) error
	GetAll(ctx context.Context, entity any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetOneWhere(ctx context.Context, conds map[string]any, entity any) error
	DeleteWhere(ctx context.Context, conds map[string]any, model any) error
	Increment(ctx context.Context, model any, column string, delta int, conds map[string]any) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}

	if v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// Save persists the record by full replacement keyed on its primary key.
func (f *PostgresDB) Save(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := f.DB.WithContext(ctx).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetOneWhere(ctx context.Context, conds map[string]any, entity any) error {
	err := f.DB.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by conditions: %w", err)
	}
	return nil
}

func (f *PostgresDB) DeleteWhere(ctx context.Context, conds map[string]any, model any) error {
	tx := f.DB.WithContext(ctx).Where(conds).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records: %w", tx.Error)
	}
	return nil
}

// Increment applies an atomic column update, the relational counterpart of a
// document store's $inc operator.
func (f *PostgresDB) Increment(ctx context.Context, model any, column string, delta int, conds map[string]any) error {
	expr := fmt.Sprintf("%s + ?", column)
	tx := f.DB.WithContext(ctx).Model(model).Where(conds).UpdateColumn(column, gorm.Expr(expr, delta))
	if tx.Error != nil {
		return fmt.Errorf("incrementing %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return f.DB.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&PostgresDB{DB: gtx})
	})
}
