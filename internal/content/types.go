package content

// Portfolio is the complete, immutable content of the page.
type Portfolio struct {
	Profile        Profile           `yaml:"profile"`
	Stats          []Stat            `yaml:"stats"`
	Highlights     []Highlight       `yaml:"highlights"`
	Skills         []SkillCategory   `yaml:"skills"`
	Certifications []Certification   `yaml:"certifications"`
	Upcoming       []string          `yaml:"upcoming_certifications"`
	Education      []EducationEntry  `yaml:"education"`
	Experience     []ExperienceEntry `yaml:"experience"`
	Projects       []Project         `yaml:"projects"`
	Contact        Contact           `yaml:"contact"`
}

// Profile is the hero block.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	Bio      string `yaml:"bio"` // markdown
	Portrait string `yaml:"portrait"`
	Location string `yaml:"location"`
}

// Stat is one hero counter.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Highlight is one "About me" card.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// SkillCategory groups related tools.
type SkillCategory struct {
	Name  string      `yaml:"category"`
	Color string      `yaml:"color"`
	Items []SkillItem `yaml:"items"`
}

// SkillItem is a tool with its icon.
type SkillItem struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

// Certification is an earned credential.
type Certification struct {
	Name          string   `yaml:"name"`
	Code          string   `yaml:"code"`
	Issuer        string   `yaml:"issuer"`
	Date          string   `yaml:"date"`
	Logo          string   `yaml:"logo"`
	Description   string   `yaml:"description"`
	Skills        []string `yaml:"skills"`
	CredentialURL string   `yaml:"credential_url"`
	Color         string   `yaml:"color"`
}

// EducationEntry is a degree or program.
type EducationEntry struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Period      string   `yaml:"period"`
	Location    string   `yaml:"location"`
	Description string   `yaml:"description"`
	Courses     []string `yaml:"courses"`
	Skills      []string `yaml:"skills"`
	Color       string   `yaml:"color"`
}

// ExperienceEntry is a job or internship.
type ExperienceEntry struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
}

// Project is a portfolio work item. Images is never empty once the
// portfolio has been validated.
type Project struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description"` // markdown
	Tech            []string `yaml:"tech"`
	Images          []string `yaml:"images"`
	Featured        bool     `yaml:"featured"`
	Metrics         Metrics  `yaml:"metrics"`
}

// Slug is the project's URL-safe identifier.
func (p *Project) Slug() string { return Slugify(p.Title) }

// Summary returns the long description, falling back to the short one.
func (p *Project) Summary() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

// Contact is the contact section.
type Contact struct {
	Intro   string          `yaml:"intro"`
	Methods []ContactMethod `yaml:"methods"`
	Socials []SocialLink    `yaml:"socials"`
}

// ContactMethod is an email, phone or location line.
type ContactMethod struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Project returns the project with the given slug.
func (p *Portfolio) Project(slug string) (*Project, bool) {
	for i := range p.Projects {
		if p.Projects[i].Slug() == slug {
			return &p.Projects[i], true
		}
	}
	return nil, false
}
