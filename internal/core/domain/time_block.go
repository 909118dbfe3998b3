package domain

import "time"

// TimeBlock is a span of logged work. Start is always before End; its
// category comes from the owning task, never from the block itself.
type TimeBlock struct {
	ID          uint64
	TaskID      *uint64
	StartTime   time.Time
	EndTime     time.Time
	Title       *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Minutes returns the block length in fractional minutes.
func (b TimeBlock) Minutes() float64 {
	return b.EndTime.Sub(b.StartTime).Minutes()
}

type CreateTimeBlockInput struct {
	TaskID      *uint64
	StartTime   time.Time
	EndTime     time.Time
	Title       *string
	Description *string
}

type TimeBlockFilter struct {
	Skip      int
	Limit     int
	TaskID    *uint64
	StartDate *time.Time
	EndDate   *time.Time
}

type TimeBlockPatch struct {
	TaskID         *uint64
	TaskIDSet      bool
	StartTime      *time.Time
	EndTime        *time.Time
	Title          *string
	TitleSet       bool
	Description    *string
	DescriptionSet bool
}

func (p TimeBlockPatch) IsEmpty() bool {
	return !p.TaskIDSet && p.StartTime == nil && p.EndTime == nil && !p.TitleSet && !p.DescriptionSet
}

// ApplyTimeBlockPatch merges patch into block, checking the resulting range
// against whichever bound the patch leaves untouched. The block is not
// modified when the range would be invalid.
func ApplyTimeBlockPatch(block *TimeBlock, patch TimeBlockPatch, now time.Time) error {
	start, end := block.StartTime, block.EndTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}

	block.StartTime, block.EndTime = start, end
	if patch.TaskIDSet {
		block.TaskID = patch.TaskID
	}
	if patch.TitleSet {
		block.Title = patch.Title
	}
	if patch.DescriptionSet {
		block.Description = patch.Description
	}
	block.UpdatedAt = now
	return nil
}
