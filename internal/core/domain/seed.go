package domain

import "time"

// Demo account e-mails. Login with one of these yields the matching role.
const (
	DemoAdminEmail    = "admin@skattajobs.com"
	DemoProviderEmail = "prestataire@test.com"
	DemoClientEmail   = "client@test.com"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func salary(v float64) *float64 { return &v }

// SeedUsers returns the demo accounts, all sharing passwordHash.
func SeedUsers(passwordHash string) []*User {
	created := day("2024-01-01")
	mk := func(id, name, email string, role Role, location string) *User {
		return &User{
			ID:           id,
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
			Phone:        "+226 70 12 34 56",
			Location:     location,
			IsVerified:   true,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}
	return []*User{
		mk("admin1", "Admin SkattaJobs", DemoAdminEmail, RoleAdmin, "Ouagadougou, Burkina Faso"),
		mk("provider0", "Jean Prestataire", DemoProviderEmail, RoleProvider, "Ouagadougou, Burkina Faso"),
		mk("client1", "Marie Client", DemoClientEmail, RoleClient, "Ouagadougou, Burkina Faso"),
		mk("provider1", "Jean Ouédraogo", "jean.ouedraogo@skattajobs.com", RoleProvider, "Ouagadougou, Secteur 15"),
		mk("provider2", "Marie Sawadogo", "marie.sawadogo@skattajobs.com", RoleProvider, "Ouagadougou, Secteur 12"),
		mk("provider3", "Paul Kaboré", "paul.kabore@skattajobs.com", RoleProvider, "Bobo-Dioulasso"),
	}
}

// SeedServices returns the demo service catalogue.
func SeedServices() []*Service {
	return []*Service{
		{
			ID:           "1",
			Title:        "Plomberie - Réparation et installation",
			Description:  "Service de plomberie professionnel pour tous vos besoins de réparation et d'installation. Intervention rapide et tarifs compétitifs.",
			ProviderID:   "provider1",
			ProviderName: "Jean Ouédraogo",
			Category:     "Plomberie",
			Price:        2500,
			Location:     "Ouagadougou, Secteur 15",
			Availability: "Disponible aujourd'hui",
			Rating:       4.8,
			ReviewCount:  45,
			Tags:         []string{"Plomberie", "Réparation", "Installation", "Urgence"},
			Images:       []string{"https://images.pexels.com/photos/8486951/pexels-photo-8486951.jpeg"},
			IsActive:     true,
			CreatedAt:    day("2024-01-10"),
			UpdatedAt:    day("2024-01-10"),
		},
		{
			ID:           "2",
			Title:        "Jardinage et entretien espaces verts",
			Description:  "Services d'entretien de jardins, taille de haies, plantation et aménagement paysager pour particuliers et entreprises.",
			ProviderID:   "provider2",
			ProviderName: "Marie Sawadogo",
			Category:     "Jardinage",
			Price:        1800,
			Location:     "Ouagadougou, Secteur 12",
			Availability: "Disponible demain",
			Rating:       4.9,
			ReviewCount:  67,
			Tags:         []string{"Jardinage", "Aménagement", "Entretien", "Plantation"},
			Images:       []string{"https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg"},
			IsActive:     true,
			CreatedAt:    day("2024-01-08"),
			UpdatedAt:    day("2024-01-08"),
		},
		{
			ID:           "3",
			Title:        "Électricité générale et dépannage",
			Description:  "Électricien qualifié pour installation électrique, dépannage d'urgence et mise aux normes. Devis gratuit.",
			ProviderID:   "provider3",
			ProviderName: "Paul Kaboré",
			Category:     "Électricité",
			Price:        3000,
			Location:     "Bobo-Dioulasso",
			Availability: "Disponible cette semaine",
			Rating:       4.7,
			ReviewCount:  89,
			Tags:         []string{"Électricité", "Dépannage", "Installation", "Normes"},
			Images:       []string{"https://images.pexels.com/photos/257736/pexels-photo-257736.jpeg"},
			IsActive:     true,
			CreatedAt:    day("2024-01-05"),
			UpdatedAt:    day("2024-01-05"),
		},
	}
}

// SeedStageOffers returns the demo stage, job and vacation-job listings.
func SeedStageOffers() []*StageOffer {
	return []*StageOffer{
		{
			ID:           "1",
			Title:        "Stage développement web - Full Stack",
			Company:      "TechBF Solutions",
			Description:  "Nous recherchons un stagiaire motivé pour rejoindre notre équipe de développement. Vous travaillerez sur des projets web modernes avec React, Node.js et MongoDB.",
			Requirements: []string{"JavaScript", "React", "Node.js", "Étudiant en informatique"},
			Location:     "Ouagadougou",
			Duration:     "3 mois",
			StartDate:    "15 Mars 2024",
			Type:         StageInternship,
			Salary:       salary(150000),
			Applicants:   23,
			Deadline:     "2024-03-01",
			ContactEmail: "rh@techbf.com",
			CreatedAt:    day("2024-01-15"),
		},
		{
			ID:           "2",
			Title:        "Job vacances - Agent commercial",
			Company:      "CommerceMax",
			Description:  "Poste temporaire pour les vacances scolaires. Vente de produits électroniques et conseil clientèle dans notre magasin du centre-ville.",
			Requirements: []string{"Bac minimum", "Sens du commerce", "Disponible 2 mois"},
			Location:     "Ouagadougou",
			Duration:     "2 mois",
			StartDate:    "1er Juillet 2024",
			Type:         StageVacationJob,
			Salary:       salary(80000),
			IsUrgent:     true,
			Applicants:   45,
			Deadline:     "2024-06-15",
			ContactEmail: "jobs@commercemax.bf",
			CreatedAt:    day("2024-01-12"),
		},
		{
			ID:           "3",
			Title:        "Stage comptabilité et gestion",
			Company:      "Cabinet Expertise BF",
			Description:  "Stage en cabinet comptable pour étudiant en finance/comptabilité. Formation pratique sur logiciels comptables et accompagnement clients.",
			Requirements: []string{"BTS/Licence Comptabilité", "Maîtrise Excel", "Rigoureux"},
			Location:     "Bobo-Dioulasso",
			Duration:     "4 mois",
			StartDate:    "1er Avril 2024",
			Type:         StageInternship,
			Salary:       salary(120000),
			Applicants:   12,
			Deadline:     "2024-03-20",
			ContactEmail: "stage@expertisebf.com",
			CreatedAt:    day("2024-01-10"),
		},
	}
}

// SeedBookings returns the demo bookings.
func SeedBookings() []*Booking {
	return []*Booking{
		{
			ID:            "1",
			ServiceID:     "1",
			ClientID:      "client1",
			ProviderID:    "provider1",
			Date:          "2024-02-15",
			Time:          "14:00",
			Duration:      2,
			Location:      "Secteur 15, Ouagadougou",
			Notes:         "Réparation fuite dans la cuisine",
			Status:        BookingConfirmed,
			PaymentMethod: PaymentAirtelMoney,
			TotalPrice:    5000,
			CreatedAt:     day("2024-01-20"),
			UpdatedAt:     day("2024-01-20"),
		},
	}
}

// SeedProfiles returns extended profile data for the demo providers.
func SeedProfiles() []*UserProfile {
	bio := "Prestataire expérimenté avec 5 ans d'expérience dans le domaine."
	availability := Availability{
		Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		TimeSlots: []string{"09:00-12:00", "14:00-18:00"},
	}
	portfolio := []PortfolioItem{{
		ID:          "1",
		Title:       "Rénovation cuisine",
		Description: "Rénovation complète d'une cuisine moderne",
		Images:      []string{"https://images.pexels.com/photos/1599791/pexels-photo-1599791.jpeg"},
		CompletedAt: "2024-01-15",
	}}
	mk := func(id string, rating float64, reviews, jobs int, specialties ...string) *UserProfile {
		a := availability
		return &UserProfile{
			ID:            id,
			Bio:           bio,
			Rating:        rating,
			ReviewCount:   reviews,
			CompletedJobs: jobs,
			Specialties:   specialties,
			Availability:  &a,
			Portfolio:     append([]PortfolioItem(nil), portfolio...),
		}
	}
	return []*UserProfile{
		mk("provider0", 4.8, 124, 89, "Plomberie", "Électricité", "Réparation"),
		mk("provider1", 4.8, 45, 40, "Plomberie", "Réparation", "Installation"),
		mk("provider2", 4.9, 67, 61, "Jardinage", "Aménagement"),
		mk("provider3", 4.7, 89, 80, "Électricité", "Dépannage"),
	}
}
