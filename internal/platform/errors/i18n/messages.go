package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeTrayInvalidUnitCount    = "TRAY_INVALID_UNIT_COUNT"
	CodeTrayInvalidSides        = "TRAY_INVALID_SIDES"
	CodeTrayInvalidDefaultValue = "TRAY_INVALID_DEFAULT_VALUE"
	CodeRollNoLiveUnits         = "ROLL_NO_LIVE_UNITS"
	CodeRollSuperseded          = "ROLL_SUPERSEDED"
	CodeRollTimedOut            = "ROLL_TIMED_OUT"
	CodeTrayNotStarted          = "TRAY_NOT_STARTED"
	CodeTrayClosed              = "TRAY_CLOSED"
)

var enUS = map[Code]string{
	CodeTrayInvalidUnitCount:    "The tray holds between 0 and {{.Max}} dice.",
	CodeTrayInvalidSides:        "Dice need between 2 and {{.Max}} sides.",
	CodeTrayInvalidDefaultValue: "The resting face must be between 1 and {{.Sides}}.",
	CodeRollNoLiveUnits:         "There are no dice in the tray to roll.",
	CodeRollSuperseded:          "The tray was reconfigured before the roll settled.",
	CodeRollTimedOut:            "The dice did not settle in time.",
	CodeTrayNotStarted:          "The dice tray is still starting.",
	CodeTrayClosed:              "The dice tray is shutting down.",
}

var ptBR = map[Code]string{
	CodeTrayInvalidUnitCount:    "A bandeja comporta entre 0 e {{.Max}} dados.",
	CodeTrayInvalidSides:        "Os dados precisam ter entre 2 e {{.Max}} lados.",
	CodeTrayInvalidDefaultValue: "A face de repouso deve estar entre 1 e {{.Sides}}.",
	CodeRollNoLiveUnits:         "Não há dados na bandeja para rolar.",
	CodeRollSuperseded:          "A bandeja foi reconfigurada antes da rolagem terminar.",
	CodeRollTimedOut:            "Os dados não pararam a tempo.",
	CodeTrayNotStarted:          "A bandeja de dados ainda está iniciando.",
	CodeTrayClosed:              "A bandeja de dados está sendo desligada.",
}
