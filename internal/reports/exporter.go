// Package reports renders list data into xlsx workbooks for the export
// endpoints.
package reports

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
)

const (
	driversSheet  = "Drivers"
	vehiclesSheet = "Vehicles"
)

var driverHeader = []string{
	"User UUID", "Name", "License Number", "Aadhar Number", "PAN Number",
	"Status", "Background Check", "Rating", "Total Rides", "Total Earnings",
	"Active", "Online", "Created At",
}

var vehicleHeader = []string{
	"ID", "Driver ID", "Type", "Registration Number", "Make", "Model",
	"Year", "Color", "Capacity", "Verification Status", "Active", "Created At",
}

// DriversWorkbook builds an xlsx workbook with one row per driver. The
// caller owns the returned file and must Close it.
func DriversWorkbook(drivers []*models.Driver) (*excelize.File, error) {
	f, err := newWorkbook(driversSheet, driverHeader)
	if err != nil {
		return nil, err
	}

	for i, d := range drivers {
		name := ""
		if d.User != nil {
			name = strings.TrimSpace(d.User.FirstName + " " + d.User.LastName)
		}
		row := []interface{}{
			d.UserUUID,
			name,
			d.LicenseNumber,
			d.AadharNumber,
			deref(d.PanNumber),
			string(d.Status),
			string(d.BackgroundCheckStatus),
			d.Rating,
			d.TotalRides,
			d.TotalEarnings,
			d.IsActive,
			d.IsOnline,
			d.CreatedAt,
		}
		if err := writeRow(f, driversSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// VehiclesWorkbook builds an xlsx workbook with one row per vehicle.
func VehiclesWorkbook(vehicles []*models.Vehicle) (*excelize.File, error) {
	f, err := newWorkbook(vehiclesSheet, vehicleHeader)
	if err != nil {
		return nil, err
	}

	for i, v := range vehicles {
		row := []interface{}{
			v.ID,
			v.DriverID,
			string(v.VehicleType),
			v.RegistrationNumber,
			v.Make,
			v.Model,
			v.Year,
			v.Color,
			v.Capacity,
			string(v.VerificationStatus),
			v.IsActive,
			v.CreatedAt,
		}
		if err := writeRow(f, vehiclesSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func newWorkbook(sheet string, header []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := writeRow(f, sheet, 1, headerRow); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, style)
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
