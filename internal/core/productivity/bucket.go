package productivity

import "taskplanner/internal/core/domain"

// Bucket accumulates a day's work for one category. A nil CategoryID is the
// uncategorized bucket.
type Bucket struct {
	CategoryID     *uint64
	TasksCompleted int
	Minutes        float64
}

// OwnerCategory resolves the category of the task owning a time block. found
// is false when the task does not exist.
type OwnerCategory func(taskID uint64) (categoryID *uint64, found bool)

// Buckets groups completed tasks by their category and time blocks by their
// owning task's category, in first-seen order. Blocks without a task, or
// whose task cannot be found, land in no bucket.
func Buckets(completed []domain.Task, blocks []domain.TimeBlock, owner OwnerCategory) []Bucket {
	var buckets []Bucket
	index := make(map[bucketKey]int)

	get := func(categoryID *uint64) *Bucket {
		key := keyOf(categoryID)
		if i, ok := index[key]; ok {
			return &buckets[i]
		}
		var id *uint64
		if categoryID != nil {
			value := *categoryID
			id = &value
		}
		buckets = append(buckets, Bucket{CategoryID: id})
		index[key] = len(buckets) - 1
		return &buckets[len(buckets)-1]
	}

	for _, task := range completed {
		get(task.CategoryID).TasksCompleted++
	}

	for _, block := range blocks {
		if block.TaskID == nil {
			continue
		}
		categoryID, found := owner(*block.TaskID)
		if !found {
			continue
		}
		get(categoryID).Minutes += block.Minutes()
	}

	return buckets
}

type bucketKey struct {
	id    uint64
	valid bool
}

func keyOf(categoryID *uint64) bucketKey {
	if categoryID == nil {
		return bucketKey{}
	}
	return bucketKey{id: *categoryID, valid: true}
}
