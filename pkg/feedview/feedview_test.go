package feedview

import (
	"errors"
	"sync"
	"testing"

	"snapfeed/internal/entity"

	"github.com/stretchr/testify/assert"
)

func demoFeed() []entity.PostView {
	return []entity.PostView{
		{ID: 2, Title: "Second post", Likes: 5, IsLiked: false},
		{ID: 1, Title: "First post", Likes: 1, IsLiked: true},
	}
}

func TestApplyToggle_Flips(t *testing.T) {
	feed := New(demoFeed())

	feed.ApplyToggle(2)

	posts := feed.Posts()
	assert.Equal(t, int64(6), posts[0].Likes)
	assert.True(t, posts[0].IsLiked)
	// The other post is untouched
	assert.Equal(t, int64(1), posts[1].Likes)
	assert.True(t, posts[1].IsLiked)
}

func TestApplyToggle_TwiceRestoresOriginalState(t *testing.T) {
	feed := New(demoFeed())

	feed.ApplyToggle(2)
	feed.ApplyToggle(2)

	posts := feed.Posts()
	assert.Equal(t, int64(5), posts[0].Likes)
	assert.False(t, posts[0].IsLiked)
}

func TestApplyToggle_UnlikeDecrements(t *testing.T) {
	feed := New(demoFeed())

	feed.ApplyToggle(1)

	posts := feed.Posts()
	assert.Equal(t, int64(0), posts[1].Likes)
	assert.False(t, posts[1].IsLiked)
}

func TestApplyToggle_UnknownIDLeavesFeedUnchanged(t *testing.T) {
	feed := New(demoFeed())

	feed.ApplyToggle(99)

	assert.Equal(t, demoFeed(), feed.Posts())
}

func TestApplyToggle_CopyOnWrite(t *testing.T) {
	original := demoFeed()
	feed := New(original)

	before := feed.Posts()
	feed.ApplyToggle(2)

	// Neither the input slice nor earlier snapshots see the edit
	assert.Equal(t, int64(5), original[0].Likes)
	assert.Equal(t, int64(5), before[0].Likes)
	assert.False(t, before[0].IsLiked)
}

func TestToggle_KeepsSpeculativeStateOnConfirmFailure(t *testing.T) {
	feed := New(demoFeed())

	err := feed.Toggle(2, func(postID uint) error {
		return errors.New("server unreachable")
	})

	assert.Error(t, err)
	// No rollback: the speculative edit stands until the next Replace
	posts := feed.Posts()
	assert.Equal(t, int64(6), posts[0].Likes)
	assert.True(t, posts[0].IsLiked)
}

func TestReplace_DiscardsSpeculativeState(t *testing.T) {
	feed := New(demoFeed())
	feed.ApplyToggle(2)

	authoritative := []entity.PostView{
		{ID: 2, Title: "Second post", Likes: 5, IsLiked: false},
	}
	feed.Replace(authoritative)

	assert.Equal(t, authoritative, feed.Posts())
}

func TestToggle_RapidClicksComposeInOrder(t *testing.T) {
	feed := New(demoFeed())

	confirmed := 0
	confirm := func(postID uint) error {
		confirmed++
		return nil
	}

	for i := 0; i < 5; i++ {
		assert.NoError(t, feed.Toggle(2, confirm))
	}

	// An odd number of toggles lands on the flipped state
	posts := feed.Posts()
	assert.Equal(t, int64(6), posts[0].Likes)
	assert.True(t, posts[0].IsLiked)
	assert.Equal(t, 5, confirmed)
}

func TestApplyToggle_ConcurrentEditsNeverLoseUpdates(t *testing.T) {
	feed := New(demoFeed())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed.ApplyToggle(2)
		}()
	}
	wg.Wait()

	// An even toggle count always returns to the original state
	posts := feed.Posts()
	assert.Equal(t, int64(5), posts[0].Likes)
	assert.False(t, posts[0].IsLiked)
}
