package model

// ProfileStage is the candidate's position in the upload -> verify -> test ->
// score lifecycle. Stages only ever advance under normal user action; an
// administrative override is the only way back.
type ProfileStage string

const (
	StageIncomplete    ProfileStage = "incomplete"
	StageCVUploaded    ProfileStage = "cv_uploaded"
	StageDataVerified  ProfileStage = "data_verified"
	StageTestCompleted ProfileStage = "test_completed"
	StageComplete      ProfileStage = "complete"
)

// NextAction is the single recommended call-to-action for a stage.
type NextAction string

const (
	NextUploadCV      NextAction = "upload_cv"
	NextVerifyData    NextAction = "verify_data"
	NextTakeTest      NextAction = "take_test"
	NextAwaitingScore NextAction = "awaiting_score"
	NextNone          NextAction = "none"
)

// Milestones are the four coarse completion flags derived from a stage.
type Milestones struct {
	CVUploaded    bool `json:"cvUploaded"`
	DataVerified  bool `json:"dataVerified"`
	TestCompleted bool `json:"testCompleted"`
	Scored        bool `json:"scored"`
}

func (s ProfileStage) rank() int {
	switch s {
	case StageIncomplete:
		return 0
	case StageCVUploaded:
		return 1
	case StageDataVerified:
		return 2
	case StageTestCompleted:
		return 3
	case StageComplete:
		return 4
	}
	return -1
}

func (s ProfileStage) Valid() bool {
	return s.rank() >= 0
}

// Milestones maps a stage to its completion flags. The mapping is total over
// the five stages; an unknown stage reports nothing completed.
func (s ProfileStage) Milestones() Milestones {
	return Milestones{
		CVUploaded:    s.rank() >= StageCVUploaded.rank(),
		DataVerified:  s.rank() >= StageDataVerified.rank(),
		TestCompleted: s.rank() >= StageTestCompleted.rank(),
		Scored:        s == StageComplete,
	}
}

// NextAction returns the recommended call-to-action for a stage.
func (s ProfileStage) NextAction() NextAction {
	switch s {
	case StageIncomplete:
		return NextUploadCV
	case StageCVUploaded:
		return NextVerifyData
	case StageDataVerified:
		return NextTakeTest
	case StageTestCompleted:
		return NextAwaitingScore
	}
	return NextNone
}

// AllowsTransitionTo reports whether moving to next keeps the stage monotonic.
// Re-entering the same stage (re-testing) is allowed; regressions are not.
func (s ProfileStage) AllowsTransitionTo(next ProfileStage) bool {
	return next.Valid() && next.rank() >= s.rank()
}
