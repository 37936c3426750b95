package memory_test

import (
	"context"
	"sync"
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return nil for an unknown user", func(t *testing.T) {
		repo := memory.NewSessionRepository()

		sess, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("Should round-trip a session", func(t *testing.T) {
		repo := memory.NewSessionRepository()

		salary := 100000
		in := domain.NewSession(1)
		in.Step = domain.StepAwaitingFormat
		in.Draft.Skills = []string{"go", "sql"}
		in.Draft.Salary = &salary

		assert.NoError(t, repo.Set(ctx, in))

		out, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, in.Step, out.Step)
		assert.Equal(t, in.Draft.Skills, out.Draft.Skills)
		assert.Equal(t, 100000, *out.Draft.Salary)
	})

	t.Run("Should not leak mutations of the returned session", func(t *testing.T) {
		repo := memory.NewSessionRepository()

		in := domain.NewSession(1)
		in.Step = domain.StepAwaitingSkills
		_ = repo.Set(ctx, in)

		first, _ := repo.Get(ctx, 1)
		first.Step = domain.StepAwaitingDecision

		second, _ := repo.Get(ctx, 1)
		assert.Equal(t, domain.StepAwaitingSkills, second.Step)
	})

	t.Run("Should clear a session", func(t *testing.T) {
		repo := memory.NewSessionRepository()

		_ = repo.Set(ctx, domain.NewSession(1))
		assert.NoError(t, repo.Clear(ctx, 1))

		sess, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("Should survive concurrent access for different users", func(t *testing.T) {
		repo := memory.NewSessionRepository()

		var wg sync.WaitGroup
		for i := int64(0); i < 50; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				sess := domain.NewSession(userID)
				sess.Step = domain.StepAwaitingSalary
				_ = repo.Set(ctx, sess)
				got, err := repo.Get(ctx, userID)
				assert.NoError(t, err)
				assert.Equal(t, userID, got.UserID)
			}(i)
		}
		wg.Wait()
	})
}
