package models

import "strings"

// Category is the fixed set of job categories. Values travel as their
// string names in JSON, never as ordinals.
type Category string

const (
	CategoryInformatika Category = "Informatika"
	CategoryPenzugy     Category = "Pénzügy"
	CategoryErtekesites Category = "Értékesítés"
	CategoryGyartas     Category = "Gyártás"
	CategoryOktatas     Category = "Oktatás"
)

var categories = []Category{
	CategoryInformatika,
	CategoryPenzugy,
	CategoryErtekesites,
	CategoryGyartas,
	CategoryOktatas,
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, known := range categories {
		if strings.EqualFold(string(known), s) {
			return known, true
		}
	}
	return "", false
}

// ApplicationStatus is a free-standing status field: any authorized caller
// may set any value, there is no enforced transition graph.
type ApplicationStatus string

const (
	ApplicationReceived ApplicationStatus = "Received"
	ApplicationInReview ApplicationStatus = "InReview"
	ApplicationRejected ApplicationStatus = "Rejected"
	ApplicationAccepted ApplicationStatus = "Accepted"
)

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	for _, known := range []ApplicationStatus{
		ApplicationReceived, ApplicationInReview, ApplicationRejected, ApplicationAccepted,
	} {
		if strings.EqualFold(string(known), s) {
			return known, true
		}
	}
	return "", false
}

type ReportTargetType string

const (
	ReportTargetJob         ReportTargetType = "Job"
	ReportTargetApplication ReportTargetType = "Application"
	ReportTargetUser        ReportTargetType = "User"
)

func ParseReportTargetType(s string) (ReportTargetType, bool) {
	for _, known := range []ReportTargetType{ReportTargetJob, ReportTargetApplication, ReportTargetUser} {
		if strings.EqualFold(string(known), s) {
			return known, true
		}
	}
	return "", false
}

type ReportStatus string

const (
	ReportOpen      ReportStatus = "Open"
	ReportResolved  ReportStatus = "Resolved"
	ReportDismissed ReportStatus = "Dismissed"
)

func ParseReportStatus(s string) (ReportStatus, bool) {
	for _, known := range []ReportStatus{ReportOpen, ReportResolved, ReportDismissed} {
		if strings.EqualFold(string(known), s) {
			return known, true
		}
	}
	return "", false
}

type CompanyRequestStatus string

const (
	RequestPending  CompanyRequestStatus = "Pending"
	RequestApproved CompanyRequestStatus = "Approved"
	RequestRejected CompanyRequestStatus = "Rejected"
)

func ParseCompanyRequestStatus(s string) (CompanyRequestStatus, bool) {
	for _, known := range []CompanyRequestStatus{RequestPending, RequestApproved, RequestRejected} {
		if strings.EqualFold(string(known), s) {
			return known, true
		}
	}
	return "", false
}

// Role names used across authorization checks.
const (
	RoleAdmin     = "Admin"
	RoleCompany   = "Company"
	RoleJobSeeker = "JobSeeker"
)
