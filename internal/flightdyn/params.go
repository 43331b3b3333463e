package flightdyn

import "fmt"

// GetParams exposes the tunable coefficients by name for config
// overrides and reporting.
func (a *Aircraft) GetParams() map[string]float64 {
	return map[string]float64{
		"S":        a.S,
		"b":        a.B,
		"c":        a.C,
		"mass":     a.Mass,
		"Ixx":      a.Ixx,
		"Iyy":      a.Iyy,
		"Izz":      a.Izz,
		"Ixz":      a.Ixz,
		"CL0":      a.CL0,
		"CD0":      a.CD0,
		"Cm0":      a.Cm0,
		"CL_alpha": a.CLAlpha,
		"CL_q":     a.CLQ,
		"CL_de":    a.CLDe,
		"CD_alpha": a.CDAlpha,
		"Cm_alpha": a.CmAlpha,
		"Cm_q":     a.CmQ,
		"Cm_de":    a.CmDe,
		"Cy_beta":  a.CyBeta,
		"Cl_beta":  a.ClBeta,
		"Cn_beta":  a.CnBeta,
		"Cl_p":     a.ClP,
		"Cn_r":     a.CnR,
	}
}

func (a *Aircraft) SetParam(name string, value float64) error {
	switch name {
	case "S":
		a.S = value
	case "b":
		a.B = value
	case "c":
		a.C = value
	case "mass":
		a.Mass = value
	case "Ixx":
		a.Ixx = value
	case "Iyy":
		a.Iyy = value
	case "Izz":
		a.Izz = value
	case "Ixz":
		a.Ixz = value
	case "CL0":
		a.CL0 = value
	case "CD0":
		a.CD0 = value
	case "Cm0":
		a.Cm0 = value
	case "CL_alpha":
		a.CLAlpha = value
	case "CL_q":
		a.CLQ = value
	case "CL_de":
		a.CLDe = value
	case "CD_alpha":
		a.CDAlpha = value
	case "Cm_alpha":
		a.CmAlpha = value
	case "Cm_q":
		a.CmQ = value
	case "Cm_de":
		a.CmDe = value
	case "Cy_beta":
		a.CyBeta = value
	case "Cl_beta":
		a.ClBeta = value
	case "Cn_beta":
		a.CnBeta = value
	case "Cl_p":
		a.ClP = value
	case "Cn_r":
		a.CnR = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
