package apierrors

const (
	MsgUnauthorized  = "unauthorized"
	MsgInvalidQuery  = "invalidQuery"
	MsgInternalError = "internalError"

	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailListTask        = "errorListTask"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailListOccurrences = "failListOccurrences"

	MsgInvalidSubTaskID      = "invalidSubTaskID"
	MsgInvalidSubTaskPayload = "invalidSubTaskPayload"
	MsgSubTaskNotFound       = "subTaskNotFound"
	MsgFailListSubtasks      = "failListSubtasks"
	MsgFailCreateSubTask     = "failCreateSubTask"
	MsgFailUpdateSubTask     = "failUpdateSubTask"
	MsgFailDeleteSubTask     = "failDeleteSubTask"

	MsgInvalidCategoryID      = "invalidCategoryID"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgDefaultCategoryDelete  = "defaultCategoryDelete"
	MsgFailListCategories     = "failListCategories"
	MsgFailGetCategory        = "failGetCategory"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"

	MsgInvalidTimeBlockID      = "invalidTimeBlockID"
	MsgInvalidTimeBlockPayload = "invalidTimeBlockPayload"
	MsgInvalidTimeRange        = "invalidTimeRange"
	MsgTimeBlockNotFound       = "timeBlockNotFound"
	MsgFailListTimeBlocks      = "failListTimeBlocks"
	MsgFailGetTimeBlock        = "failGetTimeBlock"
	MsgFailCreateTimeBlock     = "failCreateTimeBlock"
	MsgFailUpdateTimeBlock     = "failUpdateTimeBlock"
	MsgFailDeleteTimeBlock     = "failDeleteTimeBlock"

	MsgFailProductivitySummary    = "failProductivitySummary"
	MsgFailUpdateProductivityLogs = "failUpdateProductivityLogs"
	MsgFailListProductivityLogs   = "failListProductivityLogs"

	MsgFailSync         = "failSync"
	MsgFailNextReminder = "failNextReminder"
)
