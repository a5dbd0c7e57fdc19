package domain

import "time"

// Availability lists the days and time slots a provider works.
type Availability struct {
	Days      []string `json:"days"       bson:"days"`
	TimeSlots []string `json:"time_slots" bson:"time_slots"`
}

// PortfolioItem is a piece of completed work shown on a provider profile.
type PortfolioItem struct {
	ID          string   `json:"id"           bson:"id"`
	Title       string   `json:"title"        bson:"title"`
	Description string   `json:"description"  bson:"description"`
	Images      []string `json:"images"       bson:"images"`
	CompletedAt string   `json:"completed_at" bson:"completed_at"`
}

// UserProfile is the extended public view of a user.
type UserProfile struct {
	ID            string          `json:"id"                       bson:"_id"`
	Name          string          `json:"name"                     bson:"name"`
	Email         string          `json:"email"                    bson:"email"`
	Phone         string          `json:"phone,omitempty"          bson:"phone,omitempty"`
	Avatar        string          `json:"avatar,omitempty"         bson:"avatar,omitempty"`
	Location      string          `json:"location,omitempty"       bson:"location,omitempty"`
	Bio           string          `json:"bio,omitempty"            bson:"bio,omitempty"`
	Rating        float64         `json:"rating,omitempty"         bson:"rating,omitempty"`
	ReviewCount   int             `json:"review_count,omitempty"   bson:"review_count,omitempty"`
	CompletedJobs int             `json:"completed_jobs,omitempty" bson:"completed_jobs,omitempty"`
	Specialties   []string        `json:"specialties,omitempty"    bson:"specialties,omitempty"`
	Availability  *Availability   `json:"availability,omitempty"   bson:"availability,omitempty"`
	Portfolio     []PortfolioItem `json:"portfolio,omitempty"      bson:"portfolio,omitempty"`
	IsOnline      bool            `json:"is_online"                bson:"is_online"`
	LastSeen      *time.Time      `json:"last_seen,omitempty"      bson:"last_seen,omitempty"`
}

// ProfilePatch is a partial profile update. Nil fields are untouched.
type ProfilePatch struct {
	Name         *string
	Phone        *string
	Avatar       *string
	Location     *string
	Bio          *string
	Specialties  []string
	Availability *Availability
	Portfolio    []PortfolioItem
}

// Merge applies p to the profile.
func (p *UserProfile) Merge(patch ProfilePatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Specialties != nil {
		p.Specialties = append([]string(nil), patch.Specialties...)
	}
	if patch.Availability != nil {
		a := *patch.Availability
		p.Availability = &a
	}
	if patch.Portfolio != nil {
		p.Portfolio = append([]PortfolioItem(nil), patch.Portfolio...)
	}
}

// AccountPatch extracts the fields of patch that also live on the User record.
func (patch ProfilePatch) AccountPatch() UserPatch {
	return UserPatch{
		Name:     patch.Name,
		Avatar:   patch.Avatar,
		Phone:    patch.Phone,
		Location: patch.Location,
	}
}

// ProfileFromUser builds the base profile shown before any extended data exists.
func ProfileFromUser(u *User) *UserProfile {
	return &UserProfile{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
		Location: u.Location,
	}
}

// Overlay copies the account fields of u onto p, keeping the extended data.
func (p *UserProfile) Overlay(u *User) {
	p.ID = u.ID
	p.Name = u.Name
	p.Email = u.Email
	p.Phone = u.Phone
	p.Avatar = u.Avatar
	p.Location = u.Location
}

// Clone returns a deep copy of p.
func (p *UserProfile) Clone() *UserProfile {
	c := *p
	c.Specialties = append([]string(nil), p.Specialties...)
	if p.Availability != nil {
		a := Availability{
			Days:      append([]string(nil), p.Availability.Days...),
			TimeSlots: append([]string(nil), p.Availability.TimeSlots...),
		}
		c.Availability = &a
	}
	if p.Portfolio != nil {
		c.Portfolio = make([]PortfolioItem, len(p.Portfolio))
		for i, item := range p.Portfolio {
			item.Images = append([]string(nil), item.Images...)
			c.Portfolio[i] = item
		}
	}
	if p.LastSeen != nil {
		t := *p.LastSeen
		c.LastSeen = &t
	}
	return &c
}
