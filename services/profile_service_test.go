package services

import (
	"testing"

	"github.com/r-4-e/SwasthAI/models"
)

func TestSyncUserIdempotent(t *testing.T) {
	svc := NewProfileService(openTestDB(t))

	user, hasProfile, err := svc.SyncUser("uid-1", "a@example.com", "Asha")
	if err != nil {
		t.Fatalf("SyncUser: %v", err)
	}
	if user.ID != "uid-1" || user.Email != "a@example.com" {
		t.Errorf("user = %+v", user)
	}
	if hasProfile {
		t.Error("hasProfile = true for brand-new user")
	}

	// Re-sync keeps the original row.
	again, _, err := svc.SyncUser("uid-1", "changed@example.com", "Changed")
	if err != nil {
		t.Fatalf("second SyncUser: %v", err)
	}
	if again.Email != "a@example.com" {
		t.Errorf("email rewritten on re-sync: %q", again.Email)
	}
}

func TestSaveProfileReplaceSemantics(t *testing.T) {
	db := openTestDB(t)
	svc := NewProfileService(db)

	in := ProfileInput{
		Age: 25, Gender: "male", Height: 175, CurrentWeight: 70,
		GoalType: "lose", GoalWeight: 65, ActivityLevel: "sedentary",
		DailyCalories: 1509, ProteinTarget: 140, CarbsTarget: 143, FatTarget: 42, WaterTarget: 2450,
	}
	if err := svc.SaveProfile("uid-1", in); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	in.CurrentWeight = 68
	in.DailyCalories = 1480
	if err := svc.SaveProfile("uid-1", in); err != nil {
		t.Fatalf("second SaveProfile: %v", err)
	}

	var count int64
	if err := db.Model(&models.UserProfile{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("%d profile rows, want 1", count)
	}

	profile, err := svc.GetProfile("uid-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile == nil {
		t.Fatal("GetProfile returned nil after save")
	}
	if profile.CurrentWeight != 68 || profile.DailyCalories != 1480 {
		t.Errorf("profile not replaced: %+v", profile)
	}
	if profile.PreferredLanguage != "en" {
		t.Errorf("preferred language = %q, want default en", profile.PreferredLanguage)
	}

	// Every save appends a weight log entry.
	var weights int64
	if err := db.Model(&models.WeightLog{}).Count(&weights).Error; err != nil {
		t.Fatal(err)
	}
	if weights != 2 {
		t.Errorf("%d weight logs, want 2", weights)
	}
	var latest models.WeightLog
	if err := db.Order("id DESC").First(&latest).Error; err != nil {
		t.Fatal(err)
	}
	if latest.Weight != 68 {
		t.Errorf("latest weight = %v, want 68", latest.Weight)
	}
}

func TestGetProfileMissing(t *testing.T) {
	svc := NewProfileService(openTestDB(t))

	profile, err := svc.GetProfile("nobody")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile != nil {
		t.Errorf("profile = %+v, want nil", profile)
	}
}

func TestSyncUserReportsProfile(t *testing.T) {
	svc := NewProfileService(openTestDB(t))

	if _, _, err := svc.SyncUser("uid-1", "a@example.com", "Asha"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SaveProfile("uid-1", ProfileInput{Age: 25, CurrentWeight: 70}); err != nil {
		t.Fatal(err)
	}

	_, hasProfile, err := svc.SyncUser("uid-1", "a@example.com", "Asha")
	if err != nil {
		t.Fatal(err)
	}
	if !hasProfile {
		t.Error("hasProfile = false after profile save")
	}
}
