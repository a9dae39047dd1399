package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Delete_Cascades(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	const employeeID = "emp-1"

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `task_assignments` WHERE employee_id = ?").
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `documents` WHERE employee_id = ?").
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `training_progresses` WHERE employee_id = ?").
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE `users` SET `deleted_at`").
		WithArgs(sqlmock.AnyArg(), employeeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), employeeID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_RollsBackOnFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	const employeeID = "emp-1"
	boom := errors.New("disk is on fire")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `task_assignments` WHERE employee_id = ?").
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `documents` WHERE employee_id = ?").
		WithArgs(employeeID).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), employeeID)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
