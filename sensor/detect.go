package sensor

import (
	"strings"

	"github.com/jaypipes/ghw"
)

var displayClasses = []string{
	"display controller",
	"vga compatible controller",
	"3d controller",
	"2d controller",
}

// NVIDIACards lists the NVIDIA graphics cards found on the PCI bus, independently of
// whether their driver tools are installed.
func NVIDIACards() ([]string, error) {
	gpu, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}

	return nvidiaCards(gpu.GraphicsCards), nil
}

func nvidiaCards(cards []*ghw.GraphicsCard) []string {
	var names []string
	for _, card := range cards {
		deviceInfo := card.DeviceInfo
		if deviceInfo == nil || deviceInfo.Class == nil || deviceInfo.Vendor == nil {
			continue
		}
		if !isDisplayClass(deviceInfo.Class.Name) {
			continue
		}
		if !strings.Contains(strings.ToLower(deviceInfo.Vendor.Name), "nvidia") {
			continue
		}

		name := deviceInfo.Vendor.Name
		if deviceInfo.Product != nil {
			name += " " + deviceInfo.Product.Name
		}
		names = append(names, name)
	}
	return names
}

func isDisplayClass(className string) bool {
	className = strings.ToLower(className)
	for _, class := range displayClasses {
		if strings.Contains(className, class) {
			return true
		}
	}
	return false
}
