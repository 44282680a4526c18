package support

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepo(db), mock
}

func TestRepoSaveMessage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO messages \(chat_id, sender, text, client_id, supporter_id\)`).
		WithArgs("c1", "client", "hello", "cl1", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), int64(1700000000)))

	msg := &Message{ChatID: "c1", Sender: SenderClient, Text: "hello", ClientID: strPtr("cl1")}
	require.NoError(t, repo.SaveMessage(context.Background(), msg))
	assert.Equal(t, int64(7), msg.ID)
	assert.Equal(t, int64(1700000000), msg.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoGetHistory(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "chat_id", "sender", "text", "client_id", "supporter_id", "created_at_epoch"}).
		AddRow(int64(1), "c1", "client", "kule?", "cl1", nil, int64(10)).
		AddRow(int64(2), "c1", "supporter", "evet", nil, "s1", int64(20))

	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC\s+LIMIT \$2\s+\) recent\s+ORDER BY created_at_epoch ASC, id ASC`).
		WithArgs("c1", 12).
		WillReturnRows(rows)

	got, err := repo.GetHistory(context.Background(), "c1", 12)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, SenderClient, got[0].Sender)
	require.NotNil(t, got[0].ClientID)
	assert.Equal(t, "cl1", *got[0].ClientID)
	assert.Nil(t, got[0].SupporterID)

	assert.Equal(t, SenderSupporter, got[1].Sender)
	require.NotNil(t, got[1].SupporterID)
	assert.Equal(t, "s1", *got[1].SupporterID)
	require.NoError(t, mock.ExpectationsWereMet())
}
