package canvas

import (
	"encoding/json"
	"time"
)

// Course is a Canvas course record as returned by /api/v1/courses.
type Course struct {
	ID                               int64           `json:"id"`
	Name                             string          `json:"name"`
	AccountID                        int64           `json:"account_id"`
	UUID                             string          `json:"uuid"`
	StartAt                          *time.Time      `json:"start_at"`
	GradingStandardID                json.RawMessage `json:"grading_standard_id"`
	IsPublic                         *bool           `json:"is_public"`
	CreatedAt                        string          `json:"created_at"`
	CourseCode                       string          `json:"course_code"`
	DefaultView                      string          `json:"default_view"`
	RootAccountID                    int64           `json:"root_account_id"`
	EnrollmentTermID                 int64           `json:"enrollment_term_id"`
	License                          *string         `json:"license"`
	GradePassbackSetting             json.RawMessage `json:"grade_passback_setting"`
	EndAt                            *time.Time      `json:"end_at"`
	PublicSyllabus                   bool            `json:"public_syllabus"`
	PublicSyllabusToAuth             bool            `json:"public_syllabus_to_auth"`
	StorageQuotaMB                   int64           `json:"storage_quota_mb"`
	IsPublicToAuthUsers              bool            `json:"is_public_to_auth_users"`
	ApplyAssignmentGroupWeights      bool            `json:"apply_assignment_group_weights"`
	Calendar                         Calendar        `json:"calendar"`
	TimeZone                         string          `json:"time_zone"`
	Blueprint                        bool            `json:"blueprint"`
	Enrollments                      []Enrollment    `json:"enrollments"`
	HideFinalGrades                  bool            `json:"hide_final_grades"`
	WorkflowState                    string          `json:"workflow_state"`
	RestrictEnrollmentsToCourseDates bool            `json:"restrict_enrollments_to_course_dates"`
	OverriddenCourseVisibility       *string         `json:"overridden_course_visibility"`
}

// Calendar holds the course calendar feed.
type Calendar struct {
	ICS string `json:"ics"`
}

// Enrollment is the caller's enrollment in a course.
type Enrollment struct {
	Type                           string `json:"type"`
	Role                           string `json:"role"`
	RoleID                         int64  `json:"role_id"`
	UserID                         int64  `json:"user_id"`
	EnrollmentState                string `json:"enrollment_state"`
	LimitPrivilegesToCourseSection bool   `json:"limit_privileges_to_course_section"`
}

// Assignment is a Canvas assignment record as returned by
// /api/v1/courses/{id}/assignments with include=submission.
type Assignment struct {
	ID                             int64                      `json:"id"`
	Description                    *string                    `json:"description"`
	DueAt                          *time.Time                 `json:"due_at"`
	UnlockAt                       *time.Time                 `json:"unlock_at"`
	LockAt                         *time.Time                 `json:"lock_at"`
	PointsPossible                 *float64                   `json:"points_possible"`
	GradingType                    string                     `json:"grading_type"`
	AssignmentGroupID              int64                      `json:"assignment_group_id"`
	GradingStandardID              json.RawMessage            `json:"grading_standard_id"`
	CreatedAt                      string                     `json:"created_at"`
	UpdatedAt                      string                     `json:"updated_at"`
	PeerReviews                    bool                       `json:"peer_reviews"`
	AutomaticPeerReviews           bool                       `json:"automatic_peer_reviews"`
	Position                       int64                      `json:"position"`
	GradeGroupStudentsIndividually bool                       `json:"grade_group_students_individually"`
	AnonymousPeerReviews           bool                       `json:"anonymous_peer_reviews"`
	GroupCategoryID                json.RawMessage            `json:"group_category_id"`
	PostToSIS                      bool                       `json:"post_to_sis"`
	ModeratedGrading               bool                       `json:"moderated_grading"`
	OmitFromFinalGrade             bool                       `json:"omit_from_final_grade"`
	IntraGroupPeerReviews          bool                       `json:"intra_group_peer_reviews"`
	AnonymousGrading               bool                       `json:"anonymous_grading"`
	GraderCount                    int64                      `json:"grader_count"`
	FinalGraderID                  json.RawMessage            `json:"final_grader_id"`
	AllowedAttempts                int64                      `json:"allowed_attempts"`
	SecureParams                   string                     `json:"secure_params"`
	CourseID                       int64                      `json:"course_id"`
	Name                           string                     `json:"name"`
	SubmissionTypes                []string                   `json:"submission_types"`
	HasSubmittedSubmissions        bool                       `json:"has_submitted_submissions"`
	DueDateRequired                bool                       `json:"due_date_required"`
	MaxNameLength                  int64                      `json:"max_name_length"`
	InClosedGradingPeriod          bool                       `json:"in_closed_grading_period"`
	IsQuizAssignment               bool                       `json:"is_quiz_assignment"`
	CanDuplicate                   bool                       `json:"can_duplicate"`
	OriginalCourseID               *int64                     `json:"original_course_id"`
	OriginalAssignmentID           *int64                     `json:"original_assignment_id"`
	OriginalAssignmentName         *string                    `json:"original_assignment_name"`
	OriginalQuizID                 json.RawMessage            `json:"original_quiz_id"`
	WorkflowState                  string                     `json:"workflow_state"`
	Muted                          bool                       `json:"muted"`
	HTMLURL                        string                     `json:"html_url"`
	Published                      bool                       `json:"published"`
	OnlyVisibleToOverrides         bool                       `json:"only_visible_to_overrides"`
	Submission                     *Submission                `json:"submission"`
	LockedForUser                  bool                       `json:"locked_for_user"`
	SubmissionsDownloadURL         string                     `json:"submissions_download_url"`
	PostManually                   bool                       `json:"post_manually"`
	AnonymizeStudents              bool                       `json:"anonymize_students"`
	RequireLockdownBrowser         bool                       `json:"require_lockdown_browser"`
	ExternalToolTagAttributes      *ExternalToolTagAttributes `json:"external_tool_tag_attributes"`
	URL                            *string                    `json:"url"`
	IsQuizLTIAssignment            *bool                      `json:"is_quiz_lti_assignment"`
	FrozenAttributes               []string                   `json:"frozen_attributes"`
	DiscussionTopic                *DiscussionTopic           `json:"discussion_topic"`
}

// Submission is the caller's submission nested under an assignment.
type Submission struct {
	ID                            int64             `json:"id"`
	Body                          *string           `json:"body"`
	URL                           *string           `json:"url"`
	Grade                         *string           `json:"grade"`
	Score                         *float64          `json:"score"`
	SubmittedAt                   *time.Time        `json:"submitted_at"`
	AssignmentID                  int64             `json:"assignment_id"`
	UserID                        int64             `json:"user_id"`
	SubmissionType                *string           `json:"submission_type"`
	WorkflowState                 string            `json:"workflow_state"`
	GradeMatchesCurrentSubmission bool              `json:"grade_matches_current_submission"`
	GradedAt                      *time.Time        `json:"graded_at"`
	GraderID                      *int64            `json:"grader_id"`
	Attempt                       *int64            `json:"attempt"`
	CachedDueDate                 *string           `json:"cached_due_date"`
	Excused                       *bool             `json:"excused"`
	LatePolicyStatus              json.RawMessage   `json:"late_policy_status"`
	PointsDeducted                *float64          `json:"points_deducted"`
	GradingPeriodID               *int64            `json:"grading_period_id"`
	ExtraAttempts                 json.RawMessage   `json:"extra_attempts"`
	PostedAt                      *time.Time        `json:"posted_at"`
	Late                          bool              `json:"late"`
	Missing                       bool              `json:"missing"`
	SecondsLate                   int64             `json:"seconds_late"`
	EnteredGrade                  *string           `json:"entered_grade"`
	EnteredScore                  *float64          `json:"entered_score"`
	PreviewURL                    string            `json:"preview_url"`
	Attachments                   []Attachment      `json:"attachments"`
	ExternalToolURL               *string           `json:"external_tool_url"`
	MediaComment                  *MediaComment     `json:"media_comment"`
	DiscussionEntries             []DiscussionEntry `json:"discussion_entries"`
}

// Attachment is a file attached to a submission.
type Attachment struct {
	ID            int64           `json:"id"`
	UUID          string          `json:"uuid"`
	FolderID      *int64          `json:"folder_id"`
	DisplayName   string          `json:"display_name"`
	Filename      string          `json:"filename"`
	UploadStatus  string          `json:"upload_status"`
	ContentType   string          `json:"content-type"`
	URL           string          `json:"url"`
	Size          int64           `json:"size"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	UnlockAt      json.RawMessage `json:"unlock_at"`
	Locked        bool            `json:"locked"`
	Hidden        bool            `json:"hidden"`
	LockAt        json.RawMessage `json:"lock_at"`
	HiddenForUser bool            `json:"hidden_for_user"`
	ThumbnailURL  *string         `json:"thumbnail_url"`
	ModifiedAt    string          `json:"modified_at"`
	MimeClass     string          `json:"mime_class"`
	MediaEntryID  json.RawMessage `json:"media_entry_id"`
	LockedForUser bool            `json:"locked_for_user"`
	PreviewURL    *string         `json:"preview_url"`
}

// MediaComment is an audio/video comment on a submission.
type MediaComment struct {
	ContentType string          `json:"content-type"`
	DisplayName json.RawMessage `json:"display_name"`
	MediaID     string          `json:"media_id"`
	MediaType   string          `json:"media_type"`
	URL         string          `json:"url"`
}

// DiscussionEntry is one post under a discussion-type assignment. The count
// of these is what decides whether a peer-review assignment is still
// actionable.
type DiscussionEntry struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	ParentID        json.RawMessage `json:"parent_id"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
	RatingCount     json.RawMessage `json:"rating_count"`
	RatingSum       json.RawMessage `json:"rating_sum"`
	UserName        string          `json:"user_name"`
	Message         string          `json:"message"`
	User            User            `json:"user"`
	ReadState       string          `json:"read_state"`
	ForcedReadState bool            `json:"forced_read_state"`
}

// User is the author of a discussion entry.
type User struct {
	ID             int64           `json:"id"`
	DisplayName    string          `json:"display_name"`
	AvatarImageURL string          `json:"avatar_image_url"`
	HTMLURL        string          `json:"html_url"`
	Pronouns       json.RawMessage `json:"pronouns"`
}

// ExternalToolTagAttributes describes an LTI tool launch bound to an
// assignment.
type ExternalToolTagAttributes struct {
	URL            string `json:"url"`
	NewTab         *bool  `json:"new_tab"`
	ResourceLinkID string `json:"resource_link_id"`
	ContentType    string `json:"content_type"`
	ContentID      int64  `json:"content_id"`
}

// DiscussionTopic is the discussion attached to a discussion-type
// assignment.
type DiscussionTopic struct {
	ID                       int64           `json:"id"`
	Title                    string          `json:"title"`
	LastReplyAt              string          `json:"last_reply_at"`
	CreatedAt                string          `json:"created_at"`
	DelayedPostAt            json.RawMessage `json:"delayed_post_at"`
	PostedAt                 string          `json:"posted_at"`
	AssignmentID             int64           `json:"assignment_id"`
	RootTopicID              json.RawMessage `json:"root_topic_id"`
	Position                 json.RawMessage `json:"position"`
	DiscussionType           string          `json:"discussion_type"`
	LockAt                   json.RawMessage `json:"lock_at"`
	AllowRating              bool            `json:"allow_rating"`
	OnlyGradersCanRate       bool            `json:"only_graders_can_rate"`
	SortByRating             bool            `json:"sort_by_rating"`
	IsSectionSpecific        bool            `json:"is_section_specific"`
	DiscussionSubentryCount  int64           `json:"discussion_subentry_count"`
	RequireInitialPost       bool            `json:"require_initial_post"`
	UserCanSeePosts          bool            `json:"user_can_see_posts"`
	PodcastURL               json.RawMessage `json:"podcast_url"`
	ReadState                string          `json:"read_state"`
	UnreadCount              int64           `json:"unread_count"`
	Subscribed               bool            `json:"subscribed"`
	Published                bool            `json:"published"`
	CanUnpublish             bool            `json:"can_unpublish"`
	Locked                   bool            `json:"locked"`
	CanLock                  bool            `json:"can_lock"`
	CommentsDisabled         bool            `json:"comments_disabled"`
	HTMLURL                  string          `json:"html_url"`
	URL                      string          `json:"url"`
	Pinned                   bool            `json:"pinned"`
	GroupCategoryID          json.RawMessage `json:"group_category_id"`
	CanGroup                 bool            `json:"can_group"`
	LockedForUser            bool            `json:"locked_for_user"`
	Message                  string          `json:"message"`
	TodoDate                 json.RawMessage `json:"todo_date"`
}
