package models

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Service{},
		&Project{},
		&ProjectImage{},
		&BlogPost{},
		&ContactSubmission{},
		&Testimonial{},
		&SocialMediaLink{},
	}
}
