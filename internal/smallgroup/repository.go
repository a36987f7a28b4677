package smallgroup

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListGroups(ctx context.Context) ([]SmallGroup, error)
	GetGroup(ctx context.Context, id uint) (*SmallGroup, error)
	CreateGroup(ctx context.Context, g *SmallGroup) error
	UpdateGroup(ctx context.Context, g *SmallGroup) error
	DeleteGroup(ctx context.Context, id uint) error

	AddMember(ctx context.Context, m *SmallGroupMember) error
	RemoveMember(ctx context.Context, membershipID uint) error
	ListMembers(ctx context.Context, groupID uint) ([]GroupPerson, error)
	MemberExists(ctx context.Context, groupID, personID uint) (bool, error)

	AddLeader(ctx context.Context, l *SmallGroupLeader) error
	RemoveLeader(ctx context.Context, membershipID uint) error
	ListLeaders(ctx context.Context, groupID uint) ([]GroupPerson, error)
	LeaderExists(ctx context.Context, groupID, personID uint) (bool, error)

	PersonExists(ctx context.Context, personID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 👥 Groups

func (r *repository) ListGroups(ctx context.Context) ([]SmallGroup, error) {
	var groups []SmallGroup
	err := r.db.WithContext(ctx).Order("name").Find(&groups).Error
	return groups, err
}

func (r *repository) GetGroup(ctx context.Context, id uint) (*SmallGroup, error) {
	var g SmallGroup
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) CreateGroup(ctx context.Context, g *SmallGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) UpdateGroup(ctx context.Context, g *SmallGroup) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *repository) DeleteGroup(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("small_group_id = ?", id).Delete(&SmallGroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("small_group_id = ?", id).Delete(&SmallGroupLeader{}).Error; err != nil {
			return err
		}
		return tx.Delete(&SmallGroup{}, id).Error
	})
}

// ===========================
// 🧑‍🎓 Members
//
// attendee_id / leader_id columns hold Person ids, so names are joined
// straight from the people table rather than through the role tables.

func (r *repository) AddMember(ctx context.Context, m *SmallGroupMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) RemoveMember(ctx context.Context, membershipID uint) error {
	return r.db.WithContext(ctx).Delete(&SmallGroupMember{}, membershipID).Error
}

func (r *repository) ListMembers(ctx context.Context, groupID uint) ([]GroupPerson, error) {
	var rows []GroupPerson
	err := r.db.WithContext(ctx).Table("small_group_members").
		Select("small_group_members.id AS membership_id, people.id AS person_id, people.first_name, people.last_name").
		Joins("JOIN people ON people.id = small_group_members.attendee_id").
		Where("small_group_members.small_group_id = ?", groupID).
		Order("people.last_name, people.first_name").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) MemberExists(ctx context.Context, groupID, personID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SmallGroupMember{}).
		Where("small_group_id = ? AND attendee_id = ?", groupID, personID).
		Count(&count).Error
	return count > 0, err
}

// ===========================
// 🧑‍🏫 Leaders

func (r *repository) AddLeader(ctx context.Context, l *SmallGroupLeader) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) RemoveLeader(ctx context.Context, membershipID uint) error {
	return r.db.WithContext(ctx).Delete(&SmallGroupLeader{}, membershipID).Error
}

func (r *repository) ListLeaders(ctx context.Context, groupID uint) ([]GroupPerson, error) {
	var rows []GroupPerson
	err := r.db.WithContext(ctx).Table("small_group_leaders").
		Select("small_group_leaders.id AS membership_id, people.id AS person_id, people.first_name, people.last_name").
		Joins("JOIN people ON people.id = small_group_leaders.leader_id").
		Where("small_group_leaders.small_group_id = ?", groupID).
		Order("people.last_name, people.first_name").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) LeaderExists(ctx context.Context, groupID, personID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SmallGroupLeader{}).
		Where("small_group_id = ? AND leader_id = ?", groupID, personID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) PersonExists(ctx context.Context, personID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("people").
		Where("id = ?", personID).
		Count(&count).Error
	return count > 0, err
}
