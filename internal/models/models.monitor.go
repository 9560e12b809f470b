// FilePath: internal/models/models.monitor.go
package models

import "time"

// Vitals is the latest reading snapshot from the monitoring device.
// Pulse carries the SpO2 percentage; the field name follows the device firmware.
type Vitals struct {
	HeartRate   float64 `json:"heartRate"`
	Pulse       float64 `json:"pulse"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// VitalsUpdate is a partial vitals payload. Nil fields leave the stored
// value untouched; only supplied fields are merged.
type VitalsUpdate struct {
	HeartRate   *float64 `json:"heartRate,omitempty"`
	Pulse       *float64 `json:"pulse,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u VitalsUpdate) Empty() bool {
	return u.HeartRate == nil && u.Pulse == nil && u.Temperature == nil && u.Humidity == nil
}

// Emergency is the fall/SOS alert record. Timestamp is set only when the
// alert transitions to active and cleared together with it.
type Emergency struct {
	Active    bool    `json:"active"`
	Message   string  `json:"message"`
	Patient   string  `json:"patient,omitempty"`
	Address   string  `json:"address,omitempty"`
	Timestamp *string `json:"timestamp"`
}

// EmergencyUpdate is a partial emergency payload; nil fields are left
// untouched. The store stamps/clears the timestamp when Active is supplied.
type EmergencyUpdate struct {
	Active  *bool
	Message *string
	Patient *string
	Address *string
}

// Alarm holds the next scheduled reminder time in 24h "HH:MM" form.
// A nil time means no reminder is armed.
type Alarm struct {
	Time *string `json:"time"`
}

// AlarmStatus tells whether the device should currently be sounding.
type AlarmStatus string

const (
	AlarmIdle    AlarmStatus = "idle"
	AlarmRinging AlarmStatus = "ringing"
)

// DoctorStatus is the caregiver acknowledgement flag.
type DoctorStatus string

const (
	DoctorIdle   DoctorStatus = "idle"
	DoctorComing DoctorStatus = "coming"
)

// Disease is the latest disease report. Timestamp (unix millis) changes on
// every non-nil report, which is how polling clients tell a new report from
// one they have already acknowledged.
type Disease struct {
	Name      *string `json:"name"`
	Timestamp *int64  `json:"timestamp"`
}

// MonitorSnapshot is the full store state as served to dashboards.
type MonitorSnapshot struct {
	Vitals       Vitals       `json:"vitals"`
	Emergency    Emergency    `json:"emergency"`
	Alarm        Alarm        `json:"alarm"`
	AlarmStatus  AlarmStatus  `json:"alarmStatus"`
	DoctorStatus DoctorStatus `json:"doctorStatus"`
	Disease      Disease      `json:"disease"`
	History      []float64    `json:"historicalHeartRates"`
	GeneratedAt  time.Time    `json:"generatedAt"`
}
