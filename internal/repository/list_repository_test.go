package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cartly-be/internal/apperr"
	"cartly-be/internal/entities"
)

const listID = "9e8d7c6b-5a49-4838-a727-161504f3e2d1"

func listColumns() []string {
	return []string{"id", "name", "items", "created_at"}
}

func TestListRepoCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectQuery("INSERT INTO lists").
		WithArgs("Groceries", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(listColumns()).
			AddRow(listID, "Groceries", `[]`, time.Now()))

	list, err := repo.Create("Groceries", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if list.ID != listID || list.Name != "Groceries" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list.Items == nil || len(list.Items) != 0 {
		t.Fatalf("items should decode to an empty slice: %+v", list.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRepoFindByID_DecodesSnapshots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	rawItems := `[{"id":"` + itemID + `","name":"Milk","quantity":2,"tags":["dairy"],"createdAt":"2026-01-02T15:04:05Z","addedAt":"2026-01-03T10:00:00Z"}]`
	mock.ExpectQuery("SELECT id, name, items").
		WithArgs(listID).
		WillReturnRows(sqlmock.NewRows(listColumns()).
			AddRow(listID, "Groceries", rawItems, time.Now()))

	list, err := repo.FindByID(listID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("expected 1 embedded item, got %d", len(list.Items))
	}
	snap := list.Items[0]
	if snap.ID != itemID || snap.Name != "Milk" || snap.Quantity != 2 || snap.Tags[0] != "dairy" {
		t.Fatalf("snapshot decoded wrong: %+v", snap)
	}
}

func TestListRepoUpdate_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	name := "Renamed"
	mock.ExpectQuery("UPDATE lists").
		WithArgs(listID, "Renamed").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(listID, &name)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListRepoAddItem_Appended(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectExec("UPDATE lists").
		WithArgs(listID, sqlmock.AnyArg(), itemID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddItem(listID, entities.ListItem{ID: itemID, Name: "Milk", Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRepoAddItem_ListMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectExec("UPDATE lists").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(listID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.AddItem(listID, entities.ListItem{ID: itemID})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListRepoAddItem_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	// The guard in the UPDATE predicate refused the append; the list exists,
	// so the snapshot id must already be embedded.
	mock.ExpectExec("UPDATE lists").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(listID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.AddItem(listID, entities.ListItem{ID: itemID})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestListRepoRemoveItem_ReturnsRemaining(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	remaining := `[{"id":"` + itemID2 + `","name":"Bread","quantity":1,"tags":[],"createdAt":"2026-01-02T15:04:05Z","addedAt":"2026-01-03T10:00:00Z"}]`
	mock.ExpectQuery("UPDATE lists").
		WithArgs(listID, itemID).
		WillReturnRows(sqlmock.NewRows([]string{"items"}).AddRow(remaining))

	items, err := repo.RemoveItem(listID, itemID)
	if err != nil {
		t.Fatalf("RemoveItem error: %v", err)
	}
	if len(items) != 1 || items[0].ID != itemID2 {
		t.Fatalf("unexpected remaining items: %+v", items)
	}
}

func TestListRepoRemoveItem_ListMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectQuery("UPDATE lists").
		WithArgs(listID, itemID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.RemoveItem(listID, itemID)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListRepoDelete_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListRepository(db)

	mock.ExpectExec("DELETE FROM lists").
		WithArgs(listID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(listID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}
