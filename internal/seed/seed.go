// Package seed loads collaborator data (organizations, members, callings and
// calling assignments) from YAML files into the database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"calling-tracker-backend/internal/database/models"
	"calling-tracker-backend/internal/logger"
	"calling-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// OrganizationData describes an organization; Parent names an organization listed earlier
type OrganizationData struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
}

// MemberData describes a member. Members are matched by email, or by full name when no email is given.
type MemberData struct {
	FullName  string `yaml:"full_name"`
	FirstName string `yaml:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty"`
	Email     string `yaml:"email,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
	PhotoURL  string `yaml:"photo_url,omitempty"`
	IsActive  *bool  `yaml:"is_active,omitempty"`
}

// CallingData describes a calling within an organization
type CallingData struct {
	Organization         string `yaml:"organization"`
	Title                string `yaml:"title"`
	RequiresSettingApart bool   `yaml:"requires_setting_apart"`
	DisplayOrder         int    `yaml:"display_order"`
}

// AssignmentData binds a member (by email or full name) to a calling
type AssignmentData struct {
	Organization  string `yaml:"organization"`
	Calling       string `yaml:"calling"`
	Member        string `yaml:"member"`
	Active        *bool  `yaml:"active,omitempty"`
	AssignedDate  string `yaml:"assigned_date"`
	SustainedDate string `yaml:"sustained_date,omitempty"`
	SetApartDate  string `yaml:"set_apart_date,omitempty"`
	ReleasedDate  string `yaml:"released_date,omitempty"`
}

// Data is the content of one or more seed files
type Data struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Members       []MemberData       `yaml:"members"`
	Callings      []CallingData      `yaml:"callings"`
	Assignments   []AssignmentData   `yaml:"assignments"`
}

// Summary counts the records created by Apply
type Summary struct {
	Organizations int
	Members       int
	Callings      int
	Assignments   int
}

// Load reads a seed file, or every .yaml/.yml file under a directory in lexical order
func Load(path string) (*Data, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat seed path: %w", err)
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	all := &Data{}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")) {
			return nil
		}
		data, err := loadFile(p)
		if err != nil {
			return err
		}
		all.Organizations = append(all.Organizations, data.Organizations...)
		all.Members = append(all.Members, data.Members...)
		all.Callings = append(all.Callings, data.Callings...)
		all.Assignments = append(all.Assignments, data.Assignments...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func loadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &data, nil
}

// Apply writes data in a single transaction. Existing records are left as they are,
// so applying the same data twice creates nothing the second time.
func Apply(ctx context.Context, db *gorm.DB, data *Data) (Summary, error) {
	var summary Summary
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l := &loader{
			orgs:        repository.NewOrganizationRepository(tx),
			members:     repository.NewMemberRepository(tx),
			callings:    repository.NewCallingRepository(tx),
			assignments: repository.NewAssignmentRepository(tx),
			orgByName:   make(map[string]*models.Organization),
			summary:     &summary,
		}
		return l.apply(data)
	})
	if err != nil {
		return Summary{}, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organizations": summary.Organizations,
		"members":       summary.Members,
		"callings":      summary.Callings,
		"assignments":   summary.Assignments,
	}).Info("Seed data applied")
	return summary, nil
}

type loader struct {
	orgs        *repository.OrganizationRepository
	members     *repository.MemberRepository
	callings    *repository.CallingRepository
	assignments *repository.AssignmentRepository
	orgByName   map[string]*models.Organization
	summary     *Summary
}

func (l *loader) apply(data *Data) error {
	for _, org := range data.Organizations {
		if err := l.organization(org); err != nil {
			return fmt.Errorf("organization %q: %w", org.Name, err)
		}
	}
	for _, member := range data.Members {
		if err := l.member(member); err != nil {
			return fmt.Errorf("member %q: %w", member.FullName, err)
		}
	}
	for _, calling := range data.Callings {
		if err := l.calling(calling); err != nil {
			return fmt.Errorf("calling %q: %w", calling.Title, err)
		}
	}
	for _, assignment := range data.Assignments {
		if err := l.assignment(assignment); err != nil {
			return fmt.Errorf("assignment %q to %q: %w", assignment.Member, assignment.Calling, err)
		}
	}
	return nil
}

func (l *loader) organization(data OrganizationData) error {
	if data.Name == "" {
		return errors.New("name is required")
	}

	var parentID *uuid.UUID
	if data.Parent != "" {
		parent, err := l.lookupOrganization(data.Parent)
		if err != nil {
			return fmt.Errorf("parent: %w", err)
		}
		parentID = &parent.ID
	}

	org, created, err := l.orgs.FirstOrCreate(data.Name, parentID)
	if err != nil {
		return err
	}
	if created {
		l.summary.Organizations++
	}
	l.orgByName[data.Name] = org
	return nil
}

func (l *loader) lookupOrganization(name string) (*models.Organization, error) {
	if org, ok := l.orgByName[name]; ok {
		return org, nil
	}
	org, err := l.orgs.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization %q is not defined", name)
	}
	if err != nil {
		return nil, err
	}
	l.orgByName[name] = org
	return org, nil
}

func (l *loader) member(data MemberData) error {
	if data.FullName == "" {
		return errors.New("full_name is required")
	}

	key := data.Email
	if key == "" {
		key = data.FullName
	}
	_, err := l.lookupMember(key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	active := true
	if data.IsActive != nil {
		active = *data.IsActive
	}
	member := &models.Member{
		FullName:  data.FullName,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		PhotoURL:  data.PhotoURL,
		IsActive:  active,
	}
	if err := l.members.Create(member); err != nil {
		return err
	}
	l.summary.Members++
	return nil
}

// lookupMember resolves an email address or a full name
func (l *loader) lookupMember(key string) (*models.Member, error) {
	if strings.Contains(key, "@") {
		return l.members.GetByEmail(key)
	}
	return l.members.GetByFullName(key)
}

func (l *loader) calling(data CallingData) error {
	if data.Title == "" {
		return errors.New("title is required")
	}
	org, err := l.lookupOrganization(data.Organization)
	if err != nil {
		return err
	}

	_, err = l.callings.GetByTitle(org.ID, data.Title)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	calling := &models.Calling{
		OrganizationID:       org.ID,
		Title:                data.Title,
		RequiresSettingApart: data.RequiresSettingApart,
		DisplayOrder:         data.DisplayOrder,
	}
	if err := l.callings.Create(calling); err != nil {
		return err
	}
	l.summary.Callings++
	return nil
}

func (l *loader) assignment(data AssignmentData) error {
	org, err := l.lookupOrganization(data.Organization)
	if err != nil {
		return err
	}
	calling, err := l.callings.GetByTitle(org.ID, data.Calling)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("calling is not defined in %q", data.Organization)
	}
	if err != nil {
		return err
	}
	member, err := l.lookupMember(data.Member)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("member is not defined")
	}
	if err != nil {
		return err
	}

	_, err = l.assignments.FindByCallingAndMember(calling.ID, member.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	assignment := &models.CallingAssignment{
		CallingID: calling.ID,
		MemberID:  member.ID,
		IsActive:  data.Active == nil || *data.Active,
	}
	if assignment.AssignedDate, err = parseDate("assigned_date", data.AssignedDate, true); err != nil {
		return err
	}
	if assignment.SustainedDate, err = parseOptionalDate("sustained_date", data.SustainedDate); err != nil {
		return err
	}
	if assignment.SetApartDate, err = parseOptionalDate("set_apart_date", data.SetApartDate); err != nil {
		return err
	}
	if assignment.ReleasedDate, err = parseOptionalDate("released_date", data.ReleasedDate); err != nil {
		return err
	}

	// A calling has a single active holder; an incoming active assignment releases the previous one.
	if assignment.IsActive {
		current, err := l.assignments.GetActiveByCalling(calling.ID)
		switch {
		case err == nil:
			if _, err := l.assignments.Release(calling.ID, current.MemberID, assignment.AssignedDate); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}

	if err := l.assignments.Create(assignment); err != nil {
		return err
	}
	l.summary.Assignments++
	return nil
}

func parseDate(field, value string, required bool) (time.Time, error) {
	if value == "" {
		if required {
			return time.Time{}, fmt.Errorf("%s is required", field)
		}
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, err)
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value, false)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
