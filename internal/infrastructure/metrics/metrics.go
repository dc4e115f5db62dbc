package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	userTagsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubhub_user_tags_created_total",
		Help: "Number of user tags created lazily during content writes.",
	})
	contentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubhub_content_writes_total",
		Help: "Number of content create/update/delete operations.",
	}, []string{"kind"})
	commentWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubhub_comment_writes_total",
		Help: "Number of comments created.",
	})
	membershipDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubhub_membership_decisions_total",
		Help: "Number of membership approvals and rejections.",
	}, []string{"outcome"})
)

func IncUserTagCreated() { userTagsCreated.Inc() }

func IncContentWrite(kind string) { contentWrites.WithLabelValues(kind).Inc() }

func IncCommentWrite() { commentWrites.Inc() }

func IncMembershipDecision(outcome string) { membershipDecisions.WithLabelValues(outcome).Inc() }
