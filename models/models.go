package models

// All returns every model in parent -> child migration order.
func All() []any {
	return []any{
		&User{},
		&Session{},
		&AdminLog{},
		&Review{},
		&FaqCategory{},
		&Faq{},
		&Gallery{},
		&Photo{},
		&AvailabilityDate{},
		&AvailabilityTimeSlot{},
		&ContactMessage{},
		&ChatMessage{},
		&StudioSetting{},
	}
}
