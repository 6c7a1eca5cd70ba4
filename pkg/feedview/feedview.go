// Package feedview keeps a client-local working copy of the feed listing and
// applies speculative like toggles to it before the server round trip
// confirms them.
package feedview

import (
	"sync"

	"snapfeed/internal/entity"
)

// Feed is a working copy of the post listing. Edits are copy-on-write: the
// slices and posts handed out earlier are never mutated. Every speculative
// edit derives from the latest working copy, so rapid repeated toggles on the
// same post compose in order.
type Feed struct {
	mu    sync.Mutex
	posts []entity.PostView
}

func New(posts []entity.PostView) *Feed {
	f := &Feed{}
	f.Replace(posts)
	return f
}

// Posts returns a snapshot of the current working copy.
func (f *Feed) Posts() []entity.PostView {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.PostView, len(f.posts))
	copy(out, f.posts)
	return out
}

// Replace swaps in an authoritative listing, discarding any speculative
// state.
func (f *Feed) Replace(posts []entity.PostView) {
	next := make([]entity.PostView, len(posts))
	copy(next, posts)

	f.mu.Lock()
	f.posts = next
	f.mu.Unlock()
}

// ApplyToggle speculatively flips the like state of the post with the given
// id: likes moves by +1 or -1 depending on the current IsLiked, and IsLiked
// inverts. An unknown id leaves the working copy unchanged.
func (f *Feed) ApplyToggle(postID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := -1
	for i := range f.posts {
		if f.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	updated := f.posts[idx]
	if updated.IsLiked {
		updated.Likes--
	} else {
		updated.Likes++
	}
	updated.IsLiked = !updated.IsLiked

	next := make([]entity.PostView, len(f.posts))
	copy(next, f.posts)
	next[idx] = updated
	f.posts = next
}

// Toggle applies the speculative edit and then runs the confirming server
// call. The speculative state is kept even when confirm fails; it stands
// until the next Replace with an authoritative listing. The confirm error is
// returned so the caller can decide to refresh.
func (f *Feed) Toggle(postID uint, confirm func(postID uint) error) error {
	f.ApplyToggle(postID)
	if confirm == nil {
		return nil
	}
	return confirm(postID)
}
