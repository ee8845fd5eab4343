package elf

import "fmt"

// Machine is the e_machine code. Every value is kept as-is; unnamed codes
// render with their raw number.
type Machine uint16

const (
	MachineNone        Machine = 0
	MachineM32         Machine = 1
	MachineSPARC       Machine = 2
	Machine386         Machine = 3
	Machine68K         Machine = 4
	Machine88K         Machine = 5
	MachineIAMCU       Machine = 6
	Machine860         Machine = 7
	MachineMIPS        Machine = 8
	MachineS370        Machine = 9
	MachineMIPSRS3LE   Machine = 10
	MachinePARISC      Machine = 15
	MachineVPP500      Machine = 17
	MachineSPARC32Plus Machine = 18
	Machine960         Machine = 19
	MachinePPC         Machine = 20
	MachinePPC64       Machine = 21
	MachineS390        Machine = 22
	MachineSPU         Machine = 23
	MachineV800        Machine = 36
	MachineFR20        Machine = 37
	MachineRH32        Machine = 38
	MachineRCE         Machine = 39
	MachineARM         Machine = 40
	MachineAlpha       Machine = 41
	MachineSH          Machine = 42
	MachineSPARCV9     Machine = 43
	MachineTriCore     Machine = 44
	MachineARC         Machine = 45
	MachineH8300       Machine = 46
	MachineIA64        Machine = 50
	MachineMIPSX       Machine = 51
	MachineColdFire    Machine = 52
	Machine68HC12      Machine = 53
	MachineX86_64      Machine = 62
	MachineVAX         Machine = 75
	MachineAVR         Machine = 83
	MachineV850        Machine = 87
	MachineM32R        Machine = 88
	MachineOpenRISC    Machine = 92
	MachineARCompact   Machine = 93
	MachineXtensa      Machine = 94
	MachineMSP430      Machine = 105
	MachineBlackfin    Machine = 106
	MachineNIOS2       Machine = 113
	MachineTIC6000     Machine = 140
	MachineHexagon     Machine = 164
	MachineAArch64     Machine = 183
	MachineMicroBlaze  Machine = 189
	MachineCUDA        Machine = 190
	MachineZ80         Machine = 220
	MachineAMDGPU      Machine = 224
	MachineRISCV       Machine = 243
	MachineBPF         Machine = 247
	MachineCSKY        Machine = 252
	MachineLoongArch   Machine = 258
)

var machineNames = map[Machine]string{
	MachineNone:        "No specific instruction set",
	MachineM32:         "AT&T WE 32100",
	MachineSPARC:       "SPARC",
	Machine386:         "x86",
	Machine68K:         "Motorola 68000",
	Machine88K:         "Motorola 88000",
	MachineIAMCU:       "Intel MCU",
	Machine860:         "Intel 80860",
	MachineMIPS:        "MIPS",
	MachineS370:        "IBM System/370",
	MachineMIPSRS3LE:   "MIPS RS3000 Little-endian",
	MachinePARISC:      "HP PA-RISC",
	MachineVPP500:      "Fujitsu VPP500",
	MachineSPARC32Plus: "SPARC 32+",
	Machine960:         "Intel 80960",
	MachinePPC:         "PowerPC",
	MachinePPC64:       "PowerPC (64-bit)",
	MachineS390:        "IBM S/390",
	MachineSPU:         "IBM SPU/SPC",
	MachineV800:        "NEC V800",
	MachineFR20:        "Fujitsu FR20",
	MachineRH32:        "TRW RH-32",
	MachineRCE:         "Motorola RCE",
	MachineARM:         "ARM",
	MachineAlpha:       "Digital Alpha",
	MachineSH:          "SuperH",
	MachineSPARCV9:     "SPARC Version 9",
	MachineTriCore:     "Siemens TriCore",
	MachineARC:         "Argonaut RISC Core",
	MachineH8300:       "Hitachi H8/300",
	MachineIA64:        "IA-64",
	MachineMIPSX:       "Stanford MIPS-X",
	MachineColdFire:    "Motorola ColdFire",
	Machine68HC12:      "Motorola M68HC12",
	MachineX86_64:      "AMD x86-64",
	MachineVAX:         "DEC VAX",
	MachineAVR:         "Atmel AVR",
	MachineV850:        "NEC v850",
	MachineM32R:        "Mitsubishi M32R",
	MachineOpenRISC:    "OpenRISC",
	MachineARCompact:   "ARCompact",
	MachineXtensa:      "Tensilica Xtensa",
	MachineMSP430:      "TI MSP430",
	MachineBlackfin:    "Analog Devices Blackfin",
	MachineNIOS2:       "Altera Nios II",
	MachineTIC6000:     "TI TMS320C6000",
	MachineHexagon:     "Qualcomm Hexagon",
	MachineAArch64:     "ARM 64-bits (ARMv8/AArch64)",
	MachineMicroBlaze:  "Xilinx MicroBlaze",
	MachineCUDA:        "NVIDIA CUDA",
	MachineZ80:         "Zilog Z80",
	MachineAMDGPU:      "AMD GPU",
	MachineRISCV:       "RISC-V",
	MachineBPF:         "Berkeley Packet Filter",
	MachineCSKY:        "C-SKY",
	MachineLoongArch:   "LoongArch",
}

func (m Machine) Known() bool {
	_, ok := machineNames[m]
	return ok
}

func (m Machine) String() string {
	if name, ok := machineNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown instruction set (0x%X)", uint16(m))
}
