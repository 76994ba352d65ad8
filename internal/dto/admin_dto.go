package dto

type AdminRequestPayload struct {
	Reason string `json:"reason"`
}

type ReviewAdminRequestPayload struct {
	Approve bool `json:"approve"`
}

type PlatformStats struct {
	TotalCases    int64 `json:"total_cases"`
	TotalNGOs     int64 `json:"total_ngos"`
	PendingNGOs   int64 `json:"pending_ngos"`
	PendingCases  int64 `json:"pending_cases"`
	ResolvedCases int64 `json:"resolved_cases"`
}
