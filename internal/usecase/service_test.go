package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
	"bookshelf/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookService_DeleteBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().ExistsByID(gomock.Any(), int64(7)).Return(true, nil)
	mockRepo.EXPECT().DeleteByID(gomock.Any(), int64(7)).Return(nil)

	err := svc.DeleteBook(ctx, 7)
	assert.NoError(t, err)
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(mockRepo)

	// No DeleteByID expectation: a missing id must never reach the
	// repository delete.
	mockRepo.EXPECT().ExistsByID(gomock.Any(), int64(42)).Return(false, nil)

	err := svc.DeleteBook(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNotFound))
	assert.True(t, strings.Contains(err.Error(), strconv.Itoa(42)), "error should carry the id")
}

func TestBookService_DeleteBook_ExistsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(mockRepo)

	mockRepo.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(false, context.DeadlineExceeded)

	err := svc.DeleteBook(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrNotFound))
}

func TestBookService_CreateBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(mockRepo)

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *entity.Book) error {
			require.Nil(t, b.ID, "service must not pass a caller-supplied id to insert")
			id := int64(5)
			b.ID = &id
			return nil
		})

	stale := int64(99)
	created, err := svc.CreateBook(context.Background(), entity.Book{
		ID:     &stale, // ignored: ids are server-assigned
		Title:  "Test Book Title",
		Author: "Test Author",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(5), *created.ID)
	assert.Equal(t, "Test Book Title", created.Title)
	assert.Equal(t, "Test Author", created.Author)
}

func TestBookService_GetBookByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(mockRepo)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entity.Book{}, usecase.NotFoundByID(3))

	_, err := svc.GetBookByID(context.Background(), 3)
	assert.True(t, errors.Is(err, usecase.ErrNotFound))
}

func TestBookService_GetAllBooksByAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(mockRepo)

	id1, id2 := int64(1), int64(3)
	matching := []entity.Book{
		{ID: &id1, Title: "First", Author: "Author A"},
		{ID: &id2, Title: "Third", Author: "Author A"},
	}
	mockRepo.EXPECT().ListByAuthor(gomock.Any(), "Author A").Return(matching, nil)

	books, err := svc.GetAllBooksByAuthor(context.Background(), "Author A")
	require.NoError(t, err)
	require.Len(t, books, 2)
	for _, b := range books {
		assert.Equal(t, "Author A", b.Author)
	}
}
