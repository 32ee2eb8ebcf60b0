package entities

// Stage template ids; catalog tasks reference stages by these.
const (
	TemplateStageDesign     = "template-design"
	TemplateStageProduction = "template-production"
	TemplateStageQC         = "template-qc"
)

// DesignStageName names the stage that conversion pre-starts or pre-completes.
const DesignStageName = "Design"

// BudgetHoursPerItem is the planning allowance per quote line.
const BudgetHoursPerItem = 20

// DefaultStageTemplates returns a fresh copy of the production pipeline.
func DefaultStageTemplates() []ProjectStage {
	return []ProjectStage{
		{ID: TemplateStageDesign, Name: DesignStageName, Status: StageStatusPending, OwnerRole: RoleDesigner, SLAHours: 48},
		{ID: TemplateStageProduction, Name: "Production", Status: StageStatusPending, OwnerRole: RoleProduction, SLAHours: 72},
		{ID: TemplateStageQC, Name: "QC & Handover", Status: StageStatusPending, OwnerRole: RoleQC, SLAHours: 24},
	}
}

// DefaultTaskCatalog returns a fresh copy of the tasks cloned into every new project.
func DefaultTaskCatalog() []Task {
	return []Task{
		{
			ID:             "template-task-design-brief",
			ProjectID:      "template",
			StageID:        TemplateStageDesign,
			Title:          "Finalize creative brief",
			Assignee:       "Designer Team",
			Role:           RoleDesigner,
			Status:         TaskStatusNotStarted,
			EstimatedHours: 4,
		},
		{
			ID:             "template-task-production-schedule",
			ProjectID:      "template",
			StageID:        TemplateStageProduction,
			Title:          "Schedule print run",
			Assignee:       "Production Planner",
			Role:           RoleProduction,
			Status:         TaskStatusNotStarted,
			EstimatedHours: 2,
		},
	}
}
