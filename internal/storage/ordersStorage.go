package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	InsertOrder = `INSERT INTO ORDERS (id, created_at, name, email, copies_nbr, file_name, price, material_type, print_type, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
						ON CONFLICT (created_at) DO NOTHING
						RETURNING id;`
	GetActiveOrders   = `SELECT created_at, name, email, copies_nbr, file_name, price, material_type, print_type, status FROM ORDERS ORDER BY created_at;`
	GetArchivedOrders = `SELECT created_at, name, email, copies_nbr, file_name, price, material_type, print_type, status FROM ARCHIVED_ORDERS ORDER BY created_at;`

	UpdateOrderStatus = `UPDATE ORDERS SET status = $1 WHERE created_at = $2;`

	ArchiveOrders = `WITH moved AS (
							DELETE FROM ORDERS WHERE status = 'Completed' OR status = 'Canceled'
							RETURNING id, created_at, name, email, copies_nbr, file_name, price, material_type, print_type, status
					 )
					 INSERT INTO ARCHIVED_ORDERS (id, created_at, name, email, copies_nbr, file_name, price, material_type, print_type, status)
					 SELECT id, created_at, name, email, copies_nbr, file_name, price, material_type, print_type, status FROM moved
					 ON CONFLICT (created_at) DO NOTHING;`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

// AddOrder - добавляет оценённый заказ, ровно одна запись на завершённую загрузку
func (s *OrderDatabase) AddOrder(ctx context.Context, order models.OrderData) error {
	var id string
	err := s.DB.Pool.QueryRow(ctx, InsertOrder,
		uuid.NewString(),
		order.Date,
		order.Name,
		order.Email,
		order.CopiesNbr,
		order.FileName,
		order.Price,
		order.MaterialType,
		order.PrintType,
		order.Status,
	).Scan(&id)

	if err == nil {
		return nil
	}

	// Проверяем именно нарушение уникальности
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add order: %w", err)
}

// scanOrders - вычитывает заказы из результата запроса
func scanOrders(rows pgx.Rows) ([]models.OrderData, error) {
	var orders []models.OrderData
	for rows.Next() {
		var (
			date         time.Time
			name         string
			email        string
			copiesNbr    int
			fileName     string
			price        decimal.Decimal
			materialType string
			printType    string
			status       string
		)
		err := rows.Scan(
			&date,
			&name,
			&email,
			&copiesNbr,
			&fileName,
			&price,
			&materialType,
			&printType,
			&status,
		)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, models.OrderData{
			Date:         date,
			Name:         name,
			Email:        email,
			CopiesNbr:    copiesNbr,
			FileName:     fileName,
			Price:        price,
			MaterialType: materialType,
			PrintType:    printType,
			Status:       status,
		})
	}
	return orders, rows.Err()
}

func (s *OrderDatabase) GetActiveOrders(ctx context.Context) ([]models.OrderData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetActiveOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (s *OrderDatabase) GetArchivedOrders(ctx context.Context) ([]models.OrderData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetArchivedOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// UpdateOrderStatus - обновляет статус ровно одного активного заказа по дате создания
func (s *OrderDatabase) UpdateOrderStatus(ctx context.Context, date time.Time, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateOrderStatus, status, date)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ArchiveCompletedOrders - переносит все заказы в конечном статусе из активной
// таблицы в архивную. Возвращает количество перенесённых заказов.
// Перенос и удаление выполняются одним запросом: между двумя отдельными
// запросами заказ мог бы завершиться и удалиться без копии в архиве.
func (s *OrderDatabase) ArchiveCompletedOrders(ctx context.Context) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, ArchiveOrders)
	if err != nil {
		return 0, fmt.Errorf("failed to archive completed orders: %w", err)
	}
	return tag.RowsAffected(), nil
}
