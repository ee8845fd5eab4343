package elf

import "fmt"

type OSABI uint8

const (
	OSABISystemV       OSABI = 0x00
	OSABIHPUX          OSABI = 0x01
	OSABINetBSD        OSABI = 0x02
	OSABILinux         OSABI = 0x03
	OSABIHurd          OSABI = 0x04
	OSABISolaris       OSABI = 0x06
	OSABIAIX           OSABI = 0x07
	OSABIIRIX          OSABI = 0x08
	OSABIFreeBSD       OSABI = 0x09
	OSABITru64         OSABI = 0x0A
	OSABINovellModesto OSABI = 0x0B
	OSABIOpenBSD       OSABI = 0x0C
	OSABIOpenVMS       OSABI = 0x0D
	OSABINonStopKernel OSABI = 0x0E
	OSABIAROS          OSABI = 0x0F
	OSABIFenixOS       OSABI = 0x10
	OSABICloudABI      OSABI = 0x11
	OSABIOpenVOS       OSABI = 0x12

	// OSABINone never appears on disk, it marks an unset or unknown ABI.
	OSABINone OSABI = 0xFF
)

var osabiNames = map[OSABI]string{
	OSABISystemV:       "System V",
	OSABIHPUX:          "HP-UX",
	OSABINetBSD:        "NetBSD",
	OSABILinux:         "Linux",
	OSABIHurd:          "GNU Hurd",
	OSABISolaris:       "Solaris",
	OSABIAIX:           "AIX",
	OSABIIRIX:          "IRIX",
	OSABIFreeBSD:       "FreeBSD",
	OSABITru64:         "Tru64",
	OSABINovellModesto: "Novell Modesto",
	OSABIOpenBSD:       "OpenBSD",
	OSABIOpenVMS:       "OpenVMS",
	OSABINonStopKernel: "NonStop Kernel",
	OSABIAROS:          "AROS",
	OSABIFenixOS:       "Fenix OS",
	OSABICloudABI:      "Cloud ABI",
	OSABIOpenVOS:       "Stratus Technologies OpenVOS",
}

// ABI is the target operating system together with its ABI revision.
type ABI struct {
	OS      OSABI
	Version uint8
}

// NewABI maps the EI_OSABI and EI_ABIVERSION bytes to an ABI. A zero code
// with a zero revision means no ABI was declared.
func NewABI(code, version uint8) ABI {
	if code == 0 {
		if version == 0 {
			return ABI{OS: OSABINone}
		}
		return ABI{OS: OSABISystemV, Version: version}
	}
	if _, ok := osabiNames[OSABI(code)]; ok {
		return ABI{OS: OSABI(code), Version: version}
	}
	return ABI{OS: OSABINone}
}

func (a ABI) String() string {
	name, ok := osabiNames[a.OS]
	if a.OS == OSABINone || !ok {
		return "No OS ABI defined"
	}
	return fmt.Sprintf("%s - rev %d", name, a.Version)
}
