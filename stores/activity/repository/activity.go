package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/domain/activity"
	"github.com/x-xyz/nftswap/service/query"
)

const defaultLimit = 50

func makeFindQuery(optFns ...activity.FindActivityOptions) (bson.M, error) {
	opts, err := activity.GetFindActivityOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Account != nil {
		qry["account"] = *opts.Account
	}

	if opts.NftContract != nil {
		qry["nftContract"] = *opts.NftContract
	}

	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}

	if len(opts.Types) > 1 {
		qry["type"] = bson.M{"$in": opts.Types}
	} else if len(opts.Types) > 0 {
		qry["type"] = opts.Types[0]
	}

	return qry, nil
}

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) activity.Repo {
	return &activityRepo{q: q}
}

func (r *activityRepo) Insert(c ctx.Ctx, a *activity.Activity) error {
	if err := r.q.Insert(c, activity.TableActivities, a); err != nil {
		c.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindActivities(c ctx.Ctx, optFns ...activity.FindActivityOptions) ([]activity.Activity, error) {
	opts, err := activity.GetFindActivityOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("activity.GetFindActivityOptions failed")
		return nil, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return nil, err
	}

	offset := 0
	limit := defaultLimit

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}

	res := []activity.Activity{}
	if err := r.q.Search(c, activity.TableActivities, offset, limit, "-time", qry, &res); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *activityRepo) CountActivities(c ctx.Ctx, optFns ...activity.FindActivityOptions) (int, error) {
	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return 0, err
	}

	count, err := r.q.Count(c, activity.TableActivities, qry)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}
