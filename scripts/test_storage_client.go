package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/storage"
)

func main() {
	fmt.Println("=========================================")
	fmt.Println("Storage Client Test")
	fmt.Println("=========================================")
	fmt.Println()

	dir := getEnv("STORAGE_DIR", "./data-smoke")

	// Создаем durable хранилище
	store, err := storage.New(dir)
	if err != nil {
		fmt.Printf("❌ Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	fmt.Printf("✅ Storage opened at %s\n", dir)
	fmt.Println()

	// Test 1: PUT/GET
	fmt.Println("Test 1: PUT/GET")
	testKey := "cda_smoke_vehicles"
	in := []*domain.Vehicle{
		{ID: "1", Plate: "ABC123", Brand: "Toyota", Model: "Corolla", Year: 2020, OwnerID: "5"},
	}

	if err := store.Put(testKey, in); err != nil {
		fmt.Printf("❌ PUT failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ PUT %s (%d vehicles)\n", testKey, len(in))

	var out []*domain.Vehicle
	if err := store.Get(testKey, &out); err != nil {
		fmt.Printf("❌ GET failed: %v\n", err)
		os.Exit(1)
	}
	if len(out) != 1 || out[0].Plate != "ABC123" {
		fmt.Printf("❌ GET returned wrong value: %+v\n", out)
		os.Exit(1)
	}
	fmt.Printf("✅ GET %s = %s %s\n", testKey, out[0].Brand, out[0].Plate)
	fmt.Println()

	// Test 2: Overwrite заменяет коллекцию целиком
	fmt.Println("Test 2: Overwrite")
	in = append(in, &domain.Vehicle{ID: "2", Plate: "XYZ789", Brand: "Honda", Model: "Civic", Year: 2019, OwnerID: "5"})
	if err := store.Put(testKey, in); err != nil {
		fmt.Printf("❌ PUT failed: %v\n", err)
		os.Exit(1)
	}
	out = nil
	if err := store.Get(testKey, &out); err != nil {
		fmt.Printf("❌ GET failed: %v\n", err)
		os.Exit(1)
	}
	if len(out) != 2 {
		fmt.Printf("❌ Expected 2 vehicles, got %d\n", len(out))
		os.Exit(1)
	}
	fmt.Printf("✅ Overwrite %s (%d vehicles)\n", testKey, len(out))
	fmt.Println()

	// Test 3: даты переживают round-trip
	fmt.Println("Test 3: Date round-trip")
	apptKey := "cda_smoke_appointments"
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	appts := []*domain.Appointment{
		{ID: "1", VehiclePlate: "ABC123", Date: date, Time: "09:00", Status: domain.StatusScheduled, TechnicianID: "1", OwnerID: "5", CreatedAt: time.Now()},
	}
	if err := store.Put(apptKey, appts); err != nil {
		fmt.Printf("❌ PUT failed: %v\n", err)
		os.Exit(1)
	}
	var loaded []*domain.Appointment
	if err := store.Get(apptKey, &loaded); err != nil {
		fmt.Printf("❌ GET failed: %v\n", err)
		os.Exit(1)
	}
	if len(loaded) != 1 || !loaded[0].Date.Equal(date) {
		fmt.Printf("❌ Date round-trip failed: %+v\n", loaded)
		os.Exit(1)
	}
	fmt.Printf("✅ Date round-trip %s = %s\n", apptKey, loaded[0].Date.Format("2006-01-02"))
	fmt.Println()

	// Test 4: DELETE
	fmt.Println("Test 4: DELETE (cleanup)")
	if err := store.Delete(testKey); err != nil {
		fmt.Printf("❌ DELETE failed: %v\n", err)
		os.Exit(1)
	}
	if err := store.Delete(apptKey); err != nil {
		fmt.Printf("❌ DELETE failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Deleted test keys")

	// Verify deletion
	out = nil
	err = store.Get(testKey, &out)
	if !errors.Is(err, storage.ErrKeyNotFound) {
		fmt.Printf("❌ Key should not exist but GET returned: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Verified keys deleted")
	fmt.Println()

	fmt.Println("=========================================")
	fmt.Println("✅ All storage client tests passed!")
	fmt.Println("=========================================")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
