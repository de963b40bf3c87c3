package sensor

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"tinygo.org/x/bluetooth"
)

// ProxScanner watches for near-field BLE advertisements. Anything
// heard at or above the configured RSSI counts as a proximity contact;
// weaker advertisers are ignored entirely.
type ProxScanner struct {
	adapter  *bluetooth.Adapter
	program  *tea.Program
	nearRSSI float64
	running  bool
}

// NewProxScanner creates a scanner on the default adapter. nearRSSI is
// the dBm cutoff for what counts as "near".
func NewProxScanner(nearRSSI float64) *ProxScanner {
	return &ProxScanner{
		adapter:  bluetooth.DefaultAdapter,
		nearRSSI: nearRSSI,
	}
}

// Start enables the adapter and begins scanning in a goroutine.
// Contacts are delivered as ProximityMsg via program.Send.
func (s *ProxScanner) Start(p *tea.Program) error {
	s.program = p

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("enable BLE adapter: %w (try sudo or setcap cap_net_admin+ep)", err)
	}

	s.running = true
	go func() {
		err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running {
				return
			}

			rssi := float64(result.RSSI)
			if rssi < s.nearRSSI {
				return
			}

			name := result.LocalName()
			if name == "" {
				// Fall back to the advertised manufacturer plus the
				// address tail so repeated sightings stay recognizable.
				mfrs := result.ManufacturerData()
				if len(mfrs) > 0 {
					if mfrName := LookupManufacturer(mfrs[0].CompanyID); mfrName != "" {
						addr := result.Address.String()
						name = mfrName + " " + addr[len(addr)-5:]
					}
				}
			}

			if s.program != nil {
				s.program.Send(ProximityMsg{
					ID:   result.Address.String(),
					Name: name,
					RSSI: rssi,
				})
			}
		})
		if err != nil && s.running && s.program != nil {
			s.program.Send(ErrorMsg{Sensor: "prox", Err: err})
		}
	}()

	return nil
}

// Stop halts the scan. Safe to call more than once.
func (s *ProxScanner) Stop() {
	s.running = false
	_ = s.adapter.StopScan()
}
