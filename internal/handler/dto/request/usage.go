package request

type ConsumptionQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

type CallHistoryQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}
