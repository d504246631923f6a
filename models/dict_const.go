package models

type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeMid        CompanySize = "mid"
	CompanySizeEnterprise CompanySize = "enterprise"
)

func (c CompanySize) IsValid() bool {
	return c == CompanySizeStartup || c == CompanySizeMid || c == CompanySizeEnterprise
}

type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnSite WorkMode = "on-site"
)

func (w WorkMode) IsValid() bool {
	return w == WorkModeRemote || w == WorkModeHybrid || w == WorkModeOnSite
}

type CompensationType string

const (
	CompensationAnnual   CompensationType = "annual"
	CompensationHourly   CompensationType = "hourly"
	CompensationContract CompensationType = "contract"
)

func (c CompensationType) IsValid() bool {
	return c == CompensationAnnual || c == CompensationHourly || c == CompensationContract
}

type ApplicationSource string

const (
	SourceLinkedin    ApplicationSource = "linkedin"
	SourceIndeed      ApplicationSource = "indeed"
	SourceCompanySite ApplicationSource = "company_site"
	SourceReferral    ApplicationSource = "referral"
	SourceJobBoard    ApplicationSource = "job_board"
	SourceOther       ApplicationSource = "other"
)

func (s ApplicationSource) IsValid() bool {
	switch s {
	case SourceLinkedin, SourceIndeed, SourceCompanySite, SourceReferral, SourceJobBoard, SourceOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}
