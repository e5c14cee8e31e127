// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

type Lead struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BudgetMin    int    `json:"budgetMin"`
	BudgetMax    int    `json:"budgetMax"`
	Location     string `json:"location"`
	Timeline     string `json:"timeline"`
	PropertyType string `json:"propertyType"`
	Score        int    `json:"score"`
	Qualified    string `json:"qualified"`
	Urgency      string `json:"urgency"`
	Date         string `json:"date"`
}

type LeadList struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

type IntRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// LeadOptions Значения для заполнения фильтров
type LeadOptions struct {
	Locations     []string `json:"locations"`
	Timelines     []string `json:"timelines"`
	PropertyTypes []string `json:"propertyTypes"`
	BudgetMin     IntRange `json:"budgetMin"`
}

// LeadQuery Фильтр и сортировка. Отсутствующее поле означает значение по
// умолчанию, пустой список locations/timelines не пропускает ни одного лида.
type LeadQuery struct {
	Query         string    `json:"query" validate:"max=200"`
	Qualification *string   `json:"qualification"`
	Locations     *[]string `json:"locations"`
	Timelines     *[]string `json:"timelines"`
	BudgetMinLow  *int      `json:"budgetMinLow" validate:"omitempty,gte=0"`
	BudgetMinHigh *int      `json:"budgetMinHigh" validate:"omitempty,gte=0"`
	SortBy        *string   `json:"sortBy"`
	SortOrder     *string   `json:"sortOrder"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// LeadSummary Средние значения равны null для пустой выборки
type LeadSummary struct {
	Total              int             `json:"total"`
	TotalDelta         int             `json:"totalDelta"`
	Qualified          int             `json:"qualified"`
	QualificationRate  float64         `json:"qualificationRate"`
	MeanScore          *float64        `json:"meanScore"`
	MeanScoreDelta     *float64        `json:"meanScoreDelta"`
	MeanBudgetMin      *float64        `json:"meanBudgetMin"`
	MeanBudgetMinDelta *float64        `json:"meanBudgetMinDelta"`
	ByQualification    []CategoryCount `json:"byQualification"`
	ByLocation         []CategoryCount `json:"byLocation"`
	ByTimeline         []CategoryCount `json:"byTimeline"`
	ByDate             []DateCount     `json:"byDate"`
	ScoreHistogram     []HistogramBin  `json:"scoreHistogram"`
	BudgetHistogram    []HistogramBin  `json:"budgetHistogram"`
}

type LeadQueryResult struct {
	Leads   []Lead      `json:"leads"`
	Summary LeadSummary `json:"summary"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
