package records

var skillCategories = []Option{
	{Value: "Frontend", Label: "Frontend"},
	{Value: "Backend", Label: "Backend"},
	{Value: "Database", Label: "Database"},
	{Value: "Mobile", Label: "Mobile"},
	{Value: "Cloud", Label: "Cloud"},
	{Value: "DevOps", Label: "DevOps"},
	{Value: "Tools", Label: "Tools"},
	{Value: "Other", Label: "Other"},
}

var proficiencyLevels = []Option{
	{Value: "1", Label: "1 - Beginner"},
	{Value: "2", Label: "2 - Intermediate"},
	{Value: "3", Label: "3 - Advanced"},
	{Value: "4", Label: "4 - Expert"},
	{Value: "5", Label: "5 - Master"},
}

var projectStatuses = []Option{
	{Value: "completed", Label: "Completed"},
	{Value: "in-progress", Label: "In Progress"},
	{Value: "planned", Label: "Planned"},
}

var mediaTypes = []Option{
	{Value: "image", Label: "Image"},
	{Value: "video", Label: "Video"},
	{Value: "audio", Label: "Audio"},
}

var ratings = []Option{
	{Value: "1", Label: "1 Star"},
	{Value: "2", Label: "2 Stars"},
	{Value: "3", Label: "3 Stars"},
	{Value: "4", Label: "4 Stars"},
	{Value: "5", Label: "5 Stars"},
}

// Skills is the only section listed ascending; the rest of the managers
// show newest ordering slots first.
var Skills = Resource{
	Name:     "skills",
	Table:    "skills",
	Singular: "Skill",
	Ordering: []OrderBy{{Column: "order_index"}},
	Fields: []Field{
		{Name: "skill_name", Label: "Skill name", Type: FieldText, Required: true},
		{Name: "category", Label: "Category", Type: FieldSelect, Options: skillCategories},
		{Name: "proficiency_level", Label: "Proficiency", Type: FieldNumber},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

var Education = Resource{
	Name:     "education",
	Table:    "education",
	Singular: "Education entry",
	Ordering: []OrderBy{{Column: "order_index", Desc: true}},
	Fields: []Field{
		{Name: "institution_name", Label: "Institution", Type: FieldText, Required: true},
		{Name: "degree", Label: "Degree", Type: FieldText, Required: true},
		{Name: "field_of_study", Label: "Field of study", Type: FieldText},
		{Name: "grade", Label: "Grade", Type: FieldText},
		{Name: "start_date", Label: "Start date", Type: FieldDate, Required: true},
		{Name: "end_date", Label: "End date", Type: FieldDate},
		{Name: "description", Label: "Description", Type: FieldTextarea},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

var Experience = Resource{
	Name:     "experience",
	Table:    "work_experiences",
	Singular: "Work experience",
	Ordering: []OrderBy{{Column: "order_index", Desc: true}},
	Fields: []Field{
		{Name: "company_name", Label: "Company", Type: FieldText, Required: true},
		{Name: "position", Label: "Position", Type: FieldText, Required: true},
		{Name: "location", Label: "Location", Type: FieldText},
		{Name: "start_date", Label: "Start date", Type: FieldDate, Required: true},
		{Name: "end_date", Label: "End date", Type: FieldDate},
		{Name: "is_current", Label: "Current role", Type: FieldSwitch},
		{Name: "description", Label: "Description", Type: FieldTextarea},
		{Name: "technologies", Label: "Technologies", Type: FieldList},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

var Projects = Resource{
	Name:     "projects",
	Table:    "portfolio_projects",
	Singular: "Project",
	Ordering: []OrderBy{{Column: "order_index", Desc: true}},
	Fields: []Field{
		{Name: "title", Label: "Title", Type: FieldText, Required: true},
		{Name: "description", Label: "Description", Type: FieldTextarea, Required: true},
		{Name: "image_url", Label: "Image", Type: FieldFile},
		{Name: "demo_link", Label: "Demo link", Type: FieldURL},
		{Name: "repo_link", Label: "Repository link", Type: FieldURL},
		{Name: "technologies", Label: "Technologies", Type: FieldList},
		{Name: "status", Label: "Status", Type: FieldSelect, Options: projectStatuses},
		{Name: "featured", Label: "Featured", Type: FieldSwitch},
		{Name: "start_date", Label: "Start date", Type: FieldDate},
		{Name: "end_date", Label: "End date", Type: FieldDate},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

var Media = Resource{
	Name:     "media",
	Table:    "media_gallery",
	Singular: "Media item",
	Ordering: []OrderBy{{Column: "order_index", Desc: true}},
	Fields: []Field{
		{Name: "title", Label: "Title", Type: FieldText, Required: true},
		{Name: "description", Label: "Description", Type: FieldTextarea},
		{Name: "media_url", Label: "Media file", Type: FieldFile, Required: true},
		{Name: "media_type", Label: "Media type", Type: FieldSelect, Options: mediaTypes},
		{Name: "thumbnail_url", Label: "Thumbnail", Type: FieldFile},
		{Name: "tags", Label: "Tags", Type: FieldList},
		{Name: "featured", Label: "Featured", Type: FieldSwitch},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

var Testimonials = Resource{
	Name:     "testimonials",
	Table:    "testimonials",
	Singular: "Testimonial",
	Ordering: []OrderBy{{Column: "order_index", Desc: true}},
	Fields: []Field{
		{Name: "client_name", Label: "Client name", Type: FieldText, Required: true},
		{Name: "client_title", Label: "Client title", Type: FieldText},
		{Name: "client_company", Label: "Client company", Type: FieldText},
		{Name: "testimonial_text", Label: "Testimonial", Type: FieldTextarea, Required: true},
		{Name: "rating", Label: "Rating", Type: FieldSelect, Options: ratings},
		{Name: "client_image_url", Label: "Client photo", Type: FieldURL},
		{Name: "featured", Label: "Featured", Type: FieldSwitch},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

// Certificates pin featured ones to the top before falling back to the
// manual ordering.
var Certificates = Resource{
	Name:     "certificates",
	Table:    "certificates",
	Singular: "Certificate",
	Ordering: []OrderBy{{Column: "featured", Desc: true}, {Column: "order_index"}},
	Fields: []Field{
		{Name: "certificate_name", Label: "Certificate name", Type: FieldText, Required: true},
		{Name: "issuing_organization", Label: "Issuing organization", Type: FieldText, Required: true},
		{Name: "issue_date", Label: "Issue date", Type: FieldDate, Required: true},
		{Name: "expiry_date", Label: "Expiry date", Type: FieldDate},
		{Name: "credential_id", Label: "Credential ID", Type: FieldText},
		{Name: "credential_url", Label: "Credential URL", Type: FieldURL},
		{Name: "certificate_image_url", Label: "Certificate image", Type: FieldFile},
		{Name: "description", Label: "Description", Type: FieldTextarea},
		{Name: "skills_demonstrated", Label: "Skills demonstrated", Type: FieldList},
		{Name: "featured", Label: "Featured", Type: FieldSwitch},
		{Name: "order_index", Label: "Order", Type: FieldNumber},
	},
}

var All = []Resource{Skills, Education, Experience, Projects, Media, Testimonials, Certificates}

func Lookup(slug string) (Resource, bool) {
	for _, r := range All {
		if r.Name == slug {
			return r, true
		}
	}
	return Resource{}, false
}
